package main

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBaseURL(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("PANDA_BASE_URL", "")
		assert.Equal(t, defaultBaseURL, GetBaseURL())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PANDA_BASE_URL", "http://localhost:5000")
		assert.Equal(t, "http://localhost:5000", GetBaseURL())
	})
}

func TestGetTrialKey(t *testing.T) {
	t.Setenv("PANDA_TRIAL_KEY", "")
	assert.Equal(t, defaultTrialKey, GetTrialKey())

	t.Setenv("PANDA_TRIAL_KEY", "OTHER-KEY")
	assert.Equal(t, "OTHER-KEY", GetTrialKey())
}

func TestSiteConfigURLs(t *testing.T) {
	site := NewSiteConfig("https://panda.belvo.io/", "A3F3D333452DF83D32A387F3FC3-GUBA")

	assert.Equal(t, "https://panda.belvo.io", site.BaseURL)
	assert.Equal(t, "https://panda.belvo.io/?trial_key=A3F3D333452DF83D32A387F3FC3-GUBA", site.FormURL())
	assert.Equal(t, "https://panda.belvo.io/hastorni.js", site.TokenScriptURL())
	assert.Equal(t, "https://panda.belvo.io/ursidaecarinove_eating_bambu_must_die", site.VoteURL())
	assert.Equal(t, "https://panda.belvo.io", site.Origin())
}

func TestPayloadScriptURL(t *testing.T) {
	site := NewSiteConfig("https://panda.belvo.io", "KEY")

	assert.Equal(t, "https://panda.belvo.io/daxiongmao.js?T1=YWJj&key=aadfa", site.PayloadScriptURL("T1", "YWJj"))

	raw := site.PayloadScriptURL("Ursus arctos", "a+b/c==")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/daxiongmao.js", parsed.Path)
	assert.Equal(t, "a+b/c==", parsed.Query().Get("Ursus arctos"))
	assert.Equal(t, "aadfa", parsed.Query().Get("key"))
}
