package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/FinTrack/internal/auth"
	"github.com/sebuszqo/FinTrack/internal/finance/interfaces"
	"github.com/sebuszqo/FinTrack/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	accountHandler     *interfaces.AccountHandler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	reportHandler      *interfaces.ReportHandler
	health             func(ctx context.Context) map[string]string
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"database": s.health(r.Context()),
	})
}

func (s *Server) protect(handler http.HandlerFunc) http.Handler {
	return s.authService.JWTAccessTokenMiddleware()(handler)
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/signup", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	publicRoutes.Handle("/", http.HandlerFunc(notFoundHandler))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("GET /api/protected/profile", s.protect(s.userHandler.HandleGetUserProfile))

	// ACCOUNTS
	protectedRoutes.Handle("POST /api/protected/accounts", s.protect(s.accountHandler.CreateAccount))
	protectedRoutes.Handle("GET /api/protected/accounts", s.protect(s.accountHandler.GetAccounts))
	protectedRoutes.Handle("DELETE /api/protected/accounts/{accountName}", s.protect(s.accountHandler.DeleteAccount))
	protectedRoutes.Handle("GET /api/protected/accounts/{accountName}/transactions", s.protect(s.transactionHandler.GetAccountTransactions))

	// CATEGORIES
	protectedRoutes.Handle("POST /api/protected/categories", s.protect(s.categoryHandler.CreateCategory))
	protectedRoutes.Handle("GET /api/protected/categories", s.protect(s.categoryHandler.GetCategories))
	protectedRoutes.Handle("PATCH /api/protected/categories/{nickname}", s.protect(s.categoryHandler.UpdateCategory))
	protectedRoutes.Handle("DELETE /api/protected/categories/{nickname}", s.protect(s.categoryHandler.DeleteCategory))
	protectedRoutes.Handle("GET /api/protected/categories/{nickname}/transactions", s.protect(s.transactionHandler.GetCategoryTransactions))

	// TRANSACTIONS
	protectedRoutes.Handle("POST /api/protected/transactions", s.protect(s.transactionHandler.CreateTransaction))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{transactionID}", s.protect(s.transactionHandler.DeleteTransaction))

	// REPORTS
	protectedRoutes.Handle("GET /api/protected/reports/details", s.protect(s.reportHandler.GetReportDetails))
	protectedRoutes.Handle("GET /api/protected/reports/overview", s.protect(s.reportHandler.GetReportOverview))
	protectedRoutes.Handle("/", http.HandlerFunc(notFoundHandler))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}
