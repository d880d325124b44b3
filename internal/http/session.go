package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pruthviraj0106/adultplatform/internal/auth"
	"github.com/pruthviraj0106/adultplatform/internal/crypto"
	"github.com/pruthviraj0106/adultplatform/internal/model"
)

const (
	sessionCookie = "session_id"
	tokenCookie   = "token"
)

var errNotAuthenticated = errors.New("not authenticated")

type sessionKey struct{}

// authenticate is the dual check the gate runs on every protected request:
// a live, unexpired session record bound to the cookie AND a token that
// verifies for the same username. Any failure denies; there is no lenient
// path where a verification error is noted and the request goes through.
func (s *Server) authenticate(r *http.Request) (model.Session, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return model.Session{}, errNotAuthenticated
	}

	session, err := s.lookupSession(r.Context(), cookie.Value)
	if err != nil {
		return model.Session{}, errNotAuthenticated
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.store.DeleteSession(r.Context(), session.ID)
		s.dropCachedSessions(r.Context(), session.ID)
		return model.Session{}, errNotAuthenticated
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		if c, err := r.Cookie(tokenCookie); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		token = session.Token
	}

	claims, err := auth.ParseToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, token)
	if err != nil {
		return model.Session{}, errNotAuthenticated
	}
	if claims.Username != session.Username {
		return model.Session{}, errNotAuthenticated
	}
	return session, nil
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.authenticate(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r.Context())
		if session == nil || session.Role != auth.RoleAdmin {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionFromContext(ctx context.Context) *model.Session {
	value := ctx.Value(sessionKey{})
	session, _ := value.(model.Session)
	if session.ID == "" {
		return nil
	}
	return &session
}

// establishSession deletes every other session for the username first, so at
// most one session is live per principal, then issues a fresh token + record.
func (s *Server) establishSession(ctx context.Context, w http.ResponseWriter, username, role string) (model.Session, error) {
	superseded, err := s.store.DeleteSessionsByUsername(ctx, username)
	if err != nil {
		return model.Session{}, err
	}
	s.dropCachedSessions(ctx, superseded...)

	token, err := auth.NewAccessToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.TokenTTL, auth.Claims{
		Username: username,
		Role:     role,
	})
	if err != nil {
		return model.Session{}, err
	}

	now := time.Now().UTC()
	session := model.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      role,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return model.Session{}, err
	}
	s.cacheSession(ctx, session)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(s.cfg.TokenTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(s.cfg.TokenTTL.Seconds()),
	})
	return session, nil
}

func (s *Server) destroySession(ctx context.Context, w http.ResponseWriter, session model.Session) error {
	if err := s.store.DeleteSession(ctx, session.ID); err != nil {
		return err
	}
	s.dropCachedSessions(ctx, session.ID)
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", HttpOnly: true, MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: "", Path: "/", HttpOnly: true, MaxAge: -1})
	return nil
}

// Redis is a read-through cache in front of the sessions table; Postgres
// stays authoritative and everything works with redis absent.

func sessionCacheKey(id string) string {
	return "session:" + crypto.HashToken(id)
}

func (s *Server) lookupSession(ctx context.Context, id string) (model.Session, error) {
	if s.redis != nil {
		raw, err := s.redis.Get(ctx, sessionCacheKey(id)).Result()
		if err == nil {
			var session model.Session
			if err := json.Unmarshal([]byte(raw), &session); err == nil {
				return session, nil
			}
		}
	}
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	s.cacheSession(ctx, session)
	return session, nil
}

func (s *Server) cacheSession(ctx context.Context, session model.Session) {
	if s.redis == nil {
		return
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, sessionCacheKey(session.ID), raw, ttl).Err(); err != nil {
		s.log.Warn().Err(err).Msg("session cache set failed")
	}
}

func (s *Server) dropCachedSessions(ctx context.Context, ids ...string) {
	if s.redis == nil || len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sessionCacheKey(id)
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("session cache del failed")
	}
}
