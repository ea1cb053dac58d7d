package main

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// DeriveIdentityHash builds the value that authorizes the payload script
// request: base64(userAgent + identityName + operatingSystem).
func DeriveIdentityHash(userAgent, identityName, operatingSystem string) string {
	return base64.StdEncoding.EncodeToString([]byte(userAgent + identityName + operatingSystem))
}

// DeriveGroupHash maps each letter of the group name through the session's
// letter codes, joins them with "|" and base64-encodes the result.
func DeriveGroupHash(groupName string, letters LetterCodeMap) (string, error) {
	codes := make([]string, 0, len(groupName))
	for _, r := range groupName {
		code, ok := letters[string(r)]
		if !ok {
			return "", fmt.Errorf("%w: %q in %q", ErrUnknownLetter, r, groupName)
		}
		codes = append(codes, strconv.Itoa(code))
	}
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(codes, "|"))), nil
}
