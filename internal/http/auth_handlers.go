package http

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/pruthviraj0106/adultplatform/internal/auth"
	"github.com/pruthviraj0106/adultplatform/internal/crypto"
	"github.com/pruthviraj0106/adultplatform/internal/tier"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !validEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	taken, err := s.store.UsernameOrEmailTaken(r.Context(), req.Username, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error during registration")
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, "Username or email already exists")
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error during registration")
		return
	}
	user, err := s.store.CreateUser(r.Context(), req.Name, req.Email, req.Username, hash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error during registration")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"success": true,
		"user":    user,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error during login")
		return
	}
	if err := crypto.CheckPassword(user.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if _, err := s.establishSession(r.Context(), w, user.Username, auth.RoleUser); err != nil {
		writeError(w, http.StatusInternalServerError, "Session setup error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"success": true,
		"user": map[string]interface{}{
			"id":                  user.ID,
			"name":                user.Name,
			"email":               user.Email,
			"username":            user.Username,
			"subscription_status": tier.PlanLabel(user.SubscriptionStatus),
		},
	})
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := s.store.GetAdminByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials or no admin access")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error during login")
		return
	}
	if err := crypto.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials or no admin access")
		return
	}

	if _, err := s.establishSession(r.Context(), w, admin.Username, auth.RoleAdmin); err != nil {
		writeError(w, http.StatusInternalServerError, "Session setup error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"success": true,
		"user": map[string]interface{}{
			"username":            admin.Username,
			"name":                admin.Username,
			"subscription_status": 6,
		},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	if session == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if err := s.destroySession(r.Context(), w, *session); err != nil {
		writeError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Logged out successfully", "success": true})
}

func (s *Server) handleCheckAuth(w http.ResponseWriter, r *http.Request) {
	session, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// Admin namespace wins when a username exists in both tables.
	admin, err := s.store.GetAdminByUsername(r.Context(), session.Username)
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Authenticated as admin",
			"success": true,
			"user": map[string]interface{}{
				"username": admin.Username,
				"name":     admin.Username,
				"isAdmin":  true,
			},
		})
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusInternalServerError, "Error checking authentication")
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), session.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusUnauthorized, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error checking authentication")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Authenticated as user",
		"success": true,
		"user": map[string]interface{}{
			"username": user.Username,
			"name":     user.Name,
			"isAdmin":  false,
		},
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	if session == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": session.Username, "success": true})
}

func (s *Server) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	exists, err := s.store.AdminExists(r.Context(), req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating admin user")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "Admin user already exists")
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating admin user")
		return
	}
	if err := s.store.CreateAdmin(r.Context(), req.Username, hash); err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating admin user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Admin user created successfully",
		"success": true,
	})
}
