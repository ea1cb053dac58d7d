package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Build-time variables - inject via ldflags
// Example: go build -ldflags "-X main.baseURL=https://panda.example -X main.trialKey=YOUR_KEY"
var (
	baseURL  string // -X main.baseURL=...
	trialKey string // -X main.trialKey=...
)

const (
	defaultBaseURL  = "https://panda.belvo.io"
	defaultTrialKey = "A3F3D333452DF83D32A387F3FC3-GUBA"
)

// GetBaseURL returns the election site origin (build-time, env, then default).
func GetBaseURL() string {
	if baseURL != "" {
		return baseURL
	}
	if v := os.Getenv("PANDA_BASE_URL"); v != "" {
		return v
	}
	return defaultBaseURL
}

// GetTrialKey returns the ballot trial key (build-time, env, then default).
func GetTrialKey() string {
	if trialKey != "" {
		return trialKey
	}
	if v := os.Getenv("PANDA_TRIAL_KEY"); v != "" {
		return v
	}
	return defaultTrialKey
}

// SiteConfig holds the endpoints of the four vote stages.
type SiteConfig struct {
	BaseURL  string
	TrialKey string
}

func NewSiteConfig(base, key string) SiteConfig {
	return SiteConfig{
		BaseURL:  strings.TrimRight(base, "/"),
		TrialKey: key,
	}
}

func (c SiteConfig) FormURL() string {
	return c.BaseURL + "/?trial_key=" + c.TrialKey
}

func (c SiteConfig) TokenScriptURL() string {
	return c.BaseURL + "/hastorni.js"
}

// PayloadScriptURL uses the form token as the query key and the identity
// hash as its value. Both are escaped so base64 '+' survives the trip.
func (c SiteConfig) PayloadScriptURL(formToken, identityHash string) string {
	return fmt.Sprintf("%s/daxiongmao.js?%s=%s&key=aadfa", c.BaseURL, url.QueryEscape(formToken), url.QueryEscape(identityHash))
}

func (c SiteConfig) VoteURL() string {
	return c.BaseURL + "/ursidaecarinove_eating_bambu_must_die"
}

func (c SiteConfig) Origin() string {
	return c.BaseURL
}
