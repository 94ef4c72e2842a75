package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCreateTokenMissingHeader(t *testing.T) {
	tc := NewChatTokenController(newChatService(newStubChatClient()), &stubAuthVerifier{userID: "user-1"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/token", nil)
	rr := httptest.NewRecorder()

	tc.HandleCreateToken(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleCreateTokenRejectedCredential(t *testing.T) {
	tc := NewChatTokenController(newChatService(newStubChatClient()), &stubAuthVerifier{userID: "user-1"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/token", nil)
	req.Header.Set("Authorization", "Bearer forged-credential")
	rr := httptest.NewRecorder()

	tc.HandleCreateToken(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleCreateTokenSuccess(t *testing.T) {
	tc := NewChatTokenController(newChatService(newStubChatClient()), &stubAuthVerifier{userID: "user-1"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/token", nil)
	req.Header.Set("Authorization", "Bearer valid-credential")
	rr := httptest.NewRecorder()

	tc.HandleCreateToken(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotEmpty(t, resp["token"])

	// The token is scoped to the authenticated user, not anything the caller
	// put in the request.
	parsed, err := jwt.Parse(resp["token"], func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "messaging", claims["type"])
}
