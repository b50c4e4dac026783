package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin redirects to Google's consent screen
func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the OAuth code, provisions the account on
// first login and redirects back to the frontend with a JWT.
func GoogleCallback(c *gin.Context) {
	utils.LogInfo("GoogleCallback called")

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Failed to exchange OAuth code: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var googleUser googleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}
	if googleUser.Email == "" {
		utils.BadRequest(c, "Google account has no email", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", googleUser.Email).First(&user).Error; err != nil {
		// First Google login provisions the account with a random
		// password the user can later reset.
		password := googleUser.ID + fmt.Sprintf("%d", time.Now().UnixNano())
		hashed, err := utils.HashPassword(password)
		if err != nil {
			utils.InternalServerError(c, "Failed to create user", nil)
			return
		}
		user = models.User{
			Name:     googleUser.Name,
			Email:    googleUser.Email,
			Password: hashed,
			GoogleID: googleUser.ID,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to create Google user: %v", err)
			utils.InternalServerError(c, "Failed to create user", err.Error())
			return
		}
		utils.LogInfo("Provisioned Google user ID: %d", user.ID)
	} else if user.GoogleID == "" {
		config.DB.Model(&user).Update("google_id", googleUser.ID)
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, config.App.FrontendURL+"/auth/callback?token="+jwtToken)
}
