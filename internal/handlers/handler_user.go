package handlers

import (
	"net/http"

	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler handles requests for the authenticated user's own account.
type userHandler struct {
	userService        portssvc.UserSvcFacade
	preferencesService portssvc.PreferencesSvcFacade
}

// registerUserRoutes sets up the routes for user account management.
func registerUserRoutes(rg *gin.RouterGroup, userSvc portssvc.UserSvcFacade, prefSvc portssvc.PreferencesSvcFacade) {
	h := &userHandler{userService: userSvc, preferencesService: prefSvc}
	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.DELETE("/me", h.deleteAccount)
		users.PUT("/profile", h.updateProfile)
		users.PUT("/password", h.changePassword)
		users.GET("/preferences", h.getPreferences)
		users.PUT("/preferences", h.updatePreferences)
	}
}

// getMe godoc
// @Summary Get current user
// @Description Returns the authenticated user's profile.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update profile
// @Description Updates the authenticated user's username and/or email.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username or email already taken"
// @Security BearerAuth
// @Router /users/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change password
// @Description Changes the authenticated user's password after verifying the current one. Only available for local accounts.
// @Tags users
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Current password incorrect"
// @Security BearerAuth
// @Router /users/password [put]
func (h *userHandler) changePassword(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		respondServiceError(c, err, "Failed to change password")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAccount godoc
// @Summary Delete account
// @Description Permanently deletes the authenticated user and all their data.
// @Tags users
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deleteAccount(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPreferences godoc
// @Summary Get preferences
// @Description Returns the authenticated user's preferences, creating the defaults on first read.
// @Tags users
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/preferences [get]
func (h *userHandler) getPreferences(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	prefs, err := h.preferencesService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch preferences")
		return
	}
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// updatePreferences godoc
// @Summary Update preferences
// @Description Applies a partial update to the authenticated user's preferences.
// @Tags users
// @Accept json
// @Produce json
// @Param preferences body dto.UpdatePreferencesRequest true "Fields to update"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/preferences [put]
func (h *userHandler) updatePreferences(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	prefs, err := h.preferencesService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}
