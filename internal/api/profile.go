package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eddiereese03-a11y/foodapp/internal/store"
)

// SaveProfile upserts the user's profile by email. Validation happens
// before the store is touched; on success the session remembers the
// email and budget for save gating.
func (h *Handler) SaveProfile(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
		return
	}

	profiles := store.NewProfileStore(sess.DB())
	if err := profiles.SaveProfile(c.Request.Context(), req.Email, req.ZipCode, req.Budget); err != nil {
		h.logger.Warn("profile save failed", zap.String("session_id", sess.ID.String()), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error saving profile. Check table permissions and try again."})
		return
	}

	sess.SetProfile(req.Email, req.Budget)
	c.JSON(http.StatusOK, gin.H{"message": "Profile saved"})
}
