package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// credentials is the request body shared by /register and /login.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *RESTServer) registerHandler(c *gin.Context) {
	var creds credentials

	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if creds.Username == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and Password cannot be empty"})
		return
	}

	ctx := c.Request.Context()

	if _, err := s.users.Register(ctx, creds.Username, creds.Password); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists."})
			return
		}
		s.logger.Error(ctx, "register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
}

func (s *RESTServer) loginHandler(c *gin.Context) {
	var creds credentials

	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()

	res, err := s.users.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		s.logger.Error(ctx, "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful!",
		"token":       res.Token,
		"name":        res.Name,
		"accountType": res.AccountType,
		"memberSince": res.MemberSince,
	})
}

func (s *RESTServer) profileHandler(c *gin.Context) {
	username := c.GetString(ctxKeyUsername)

	ctx := c.Request.Context()

	p, err := s.users.Profile(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		s.logger.Error(ctx, "profile lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":        p.Name,
		"email":       p.Email,
		"accountType": p.AccountType,
		"memberSince": p.MemberSince,
	})
}
