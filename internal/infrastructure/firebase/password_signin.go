package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
}

type signInError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for a Firebase ID token via
// the Identity Toolkit REST API. The Admin SDK cannot mint ID tokens itself.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("firebase API key is not configured")
	}

	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", identityToolkitURL, f.apiKey)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr signInError
		if err := json.Unmarshal(payload, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("firebase sign-in failed: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("firebase sign-in failed with status %d", resp.StatusCode)
	}

	var result signInResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}
