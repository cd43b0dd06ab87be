package api

import (
	"net/http"
	"strings"

	"grocer/internal/database"
	"grocer/internal/dto"
	"grocer/internal/session"
	"grocer/internal/store"

	"github.com/labstack/echo/v4"
)

// FeedbackHandler 儲存登入使用者的意見回饋
// @Summary     Submit feedback
// @Tags        feedback
// @Accept      json
// @Produce     json
// @Param       body body     dto.FeedbackRequest true "意見內容"
// @Success     200  {object} dto.MessageResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /feedback [post]
func FeedbackHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromContext(c)
		var req dto.FeedbackRequest
		if !s.LoggedIn() || c.Bind(&req) != nil || strings.TrimSpace(req.Feedback) == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid input!"})
		}
		if _, err := store.CreateFeedback(c.Request().Context(), db, s.UserID, req.Feedback); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback submitted!"})
	}
}
