package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthStateCookie = "oauthState"
	googleUserInfo   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleCredentials are the OAuth client settings for Google sign-in.
type GoogleCredentials struct {
	ClientID     string
	ClientSecret string
}

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
	randomGen   contract.IRandomGenerator
	oauthConfig *oauth2.Config
	secure      bool
}

func NewAuthHandler(uc usecasecontract.IAuthUseCase, randomGen contract.IRandomGenerator, baseURL string, google GoogleCredentials, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authUsecase: uc,
		randomGen:   randomGen,
		oauthConfig: googleOauthConfig(baseURL, google),
		secure:      secureCookies,
	}
}

type UserInfo struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
}

func googleOauthConfig(baseURL string, creds GoogleCredentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  baseURL + "/api/v1/auth/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// Login signs in (or registers) by email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, accessToken, refreshToken, err := h.authUsecase.LoginUser(c.Request.Context(), req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	accessToken, refreshToken, err := h.authUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandler) HandleGoogleLogin(ctx *gin.Context) {
	if h.oauthConfig.ClientID == "" {
		ErrorHandler(ctx, http.StatusNotImplemented, "Google sign-in is not configured")
		return
	}
	state, err := h.randomGen.GenerateRandomToken(16)
	if err != nil {
		HandleError(ctx, err)
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, state, 300, "/", "", h.secure, true)
	ctx.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(ctx, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", h.secure, true)

	code := ctx.Query("code")
	if code == "" {
		ErrorHandler(ctx, http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := ctx.Request.Context()
	token, err := h.oauthConfig.Exchange(requestCtx, code)
	if err != nil {
		ErrorHandler(ctx, http.StatusBadGateway, fmt.Sprintf("failed to exchange authorization code: %v", err))
		return
	}
	info, err := fetchGoogleProfile(requestCtx, h.oauthConfig, token)
	if err != nil {
		ErrorHandler(ctx, http.StatusBadGateway, err.Error())
		return
	}
	if !info.VerifiedEmail {
		ErrorHandler(ctx, http.StatusForbidden, "Google account email is not verified")
		return
	}

	user, accessToken, refreshToken, err := h.authUsecase.LoginWithOAuth(requestCtx, info.Email, info.Name)
	if err != nil {
		HandleError(ctx, err)
		return
	}
	SuccessHandler(ctx, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func fetchGoogleProfile(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*UserInfo, error) {
	client := cfg.Client(ctx, token)
	resp, err := client.Get(googleUserInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request failed with status %d", resp.StatusCode)
	}
	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("user info has no email")
	}
	return &info, nil
}

