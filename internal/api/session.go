package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetCredentials validates the supplied credentials with a live read
// against the store and, on success, opens a session in the Idle state
// and returns its token. A failed validation leaves nothing set; the
// user retries explicitly.
func (h *Handler) SetCredentials(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all credentials"})
		return
	}

	db, err := h.connect(c.Request.Context(), req.StoreEndpoint, req.StoreKey)
	if err != nil {
		h.logger.Warn("credential validation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Connection failed: " + err.Error()})
		return
	}

	sess := h.sessions.Create(db, req.SearchAPIKey)
	token, err := h.tokens.Issue(sess.ID)
	if err != nil {
		h.sessions.Remove(sess.ID)
		h.logger.Error("failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"state": sess.State(),
	})
}

// ClearCredentials drops the session unconditionally. It is idempotent:
// clearing with no live session is still a success.
func (h *Handler) ClearCredentials(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
		if sessionID, err := h.tokens.Validate(parts[1]); err == nil {
			h.sessions.Remove(sessionID)
		}
	}
	c.JSON(http.StatusOK, gin.H{"state": "unauthenticated"})
}

// GetSession reports the session's view state so the SPA can restore
// itself after a reload.
func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	results := sess.Results()
	summaries := make([]RecipeSummaryResponse, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, toSummaryResponse(r))
	}

	c.JSON(http.StatusOK, gin.H{
		"state":           sess.State(),
		"has_profile":     sess.ProfileEmail() != "",
		"profile_email":   sess.ProfileEmail(),
		"budget":          sess.Budget(),
		"results":         summaries,
		"selected_recipe": sess.SelectedRecipe(),
	})
}
