package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBattleLifecycleEndToEnd walks the full scenario: a new player signs
// in, opens a battle, a second player joins it, and the creator can no
// longer delete it.
func TestBattleLifecycleEndToEnd(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/webapp", map[string]interface{}{
		"user_id": 42,
	})
	require.Equal(t, http.StatusCreated, status)
	character := body["character"].(map[string]interface{})
	assert.EqualValues(t, 0, character["experience"])
	assert.EqualValues(t, 0, character["level"])

	status, _ = doJSON(t, app, http.MethodPost, "/webapp", map[string]interface{}{
		"user_id": 43,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body = doJSON(t, app, http.MethodPost, "/battles", map[string]interface{}{
		"user_id": 42,
	})
	require.Equal(t, http.StatusOK, status)
	battle := body["battle"].(map[string]interface{})
	battleID := battle["id"].(string)
	assert.Equal(t, "waiting", battle["status"])
	assert.EqualValues(t, 42, battle["creator_id"])
	assert.Nil(t, battle["opponent_id"])

	status, body = doJSON(t, app, http.MethodPost, "/battles/"+battleID+"/join", map[string]interface{}{
		"user_id": 43,
	})
	require.Equal(t, http.StatusOK, status)
	battle = body["battle"].(map[string]interface{})
	assert.Equal(t, "in_progress", battle["status"])
	assert.EqualValues(t, 43, battle["opponent_id"])

	status, _ = doJSON(t, app, http.MethodDelete, "/battles/"+battleID+"/delete", nil)
	assert.Equal(t, http.StatusNotFound, status, "joined battles are no longer cancellable")
}

func TestBattleSelfJoinRejected(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/webapp", map[string]interface{}{"user_id": 42})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/battles", map[string]interface{}{"user_id": 42})
	require.Equal(t, http.StatusOK, status)
	battleID := body["battle"].(map[string]interface{})["id"].(string)

	status, body = doJSON(t, app, http.MethodPost, "/battles/"+battleID+"/join", map[string]interface{}{
		"user_id": 42,
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "You cannot join your own battle", body["error"])
}

func TestBattleJoinMissing(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/webapp", map[string]interface{}{"user_id": 43})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, app, http.MethodPost, "/battles/0b5fa2a8-7e0f-4dce-9cc7-1f6b5aafd35b/join",
		map[string]interface{}{"user_id": 43})
	assert.Equal(t, http.StatusNotFound, status)

	// A malformed id can never name a battle.
	status, _ = doJSON(t, app, http.MethodPost, "/battles/nope/join",
		map[string]interface{}{"user_id": 43})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBattleDeleteValidation(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodDelete, "/battles/not-a-uuid/delete", nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid battle id", body["error"])

	status, _ = doJSON(t, app, http.MethodDelete, "/battles/0b5fa2a8-7e0f-4dce-9cc7-1f6b5aafd35b/delete", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBattleDeleteWaiting(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/webapp", map[string]interface{}{"user_id": 42})
	require.Equal(t, http.StatusCreated, status)
	status, body := doJSON(t, app, http.MethodPost, "/battles", map[string]interface{}{"user_id": 42})
	require.Equal(t, http.StatusOK, status)
	battleID := body["battle"].(map[string]interface{})["id"].(string)

	status, body = doJSON(t, app, http.MethodDelete, "/battles/"+battleID+"/delete", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Battle cancelled", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/battles", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["battles"])
}

func TestBattleListFilter(t *testing.T) {
	app := newTestApp(t)

	for _, id := range []int64{42, 43} {
		status, _ := doJSON(t, app, http.MethodPost, "/webapp", map[string]interface{}{"user_id": id})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := doJSON(t, app, http.MethodPost, "/battles", map[string]interface{}{"user_id": 42})
	require.Equal(t, http.StatusOK, status)
	battleID := body["battle"].(map[string]interface{})["id"].(string)
	status, _ = doJSON(t, app, http.MethodPost, "/battles", map[string]interface{}{"user_id": 43})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/battles/"+battleID+"/join", map[string]interface{}{"user_id": 43})
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, "/battles", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["battles"], 2)

	status, body = doJSON(t, app, http.MethodGet, "/battles?status=waiting", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["battles"], 1)

	status, body = doJSON(t, app, http.MethodGet, "/battles?status=in_progress", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["battles"], 1)
}
