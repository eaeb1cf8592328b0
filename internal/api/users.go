package api

import (
	"context"
	"net/url"
)

// UsersService covers registration, login, profile, and KYC endpoints.
type UsersService struct {
	c *Client
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone" validate:"required"`
	FullName string   `json:"full_name" validate:"required"`
	Role     UserRole `json:"role,omitempty" validate:"omitempty,oneof=passenger driver owner admin"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Register creates a new user account.
func (s *UsersService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var user User
	if err := s.c.gw.Post(ctx, "/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token and identity summary.
func (s *UsersService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var tok TokenResponse
	if err := s.c.gw.Post(ctx, "/users/login", req, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Me returns the authenticated user's profile.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.c.gw.Get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMeRequest carries profile mutations.
type UpdateMeRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// UpdateMe updates the authenticated user's profile.
func (s *UsersService) UpdateMe(ctx context.Context, req UpdateMeRequest) (*User, error) {
	var user User
	if err := s.c.gw.Put(ctx, "/users/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SubmitKYCDocument uploads a compliance document record.
func (s *UsersService) SubmitKYCDocument(ctx context.Context, req KYCDocumentCreate) (*KYCDocument, error) {
	if err := s.c.check(req); err != nil {
		return nil, err
	}
	var doc KYCDocument
	if err := s.c.gw.Post(ctx, "/users/kyc/documents", req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListKYCDocuments returns the authenticated user's documents.
func (s *UsersService) ListKYCDocuments(ctx context.Context) ([]KYCDocument, error) {
	var docs []KYCDocument
	if err := s.c.gw.Get(ctx, "/users/kyc/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get returns a user by id (admin surface).
func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	var user User
	if err := s.c.gw.Get(ctx, "/users/"+id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users (admin surface).
func (s *UsersService) List(ctx context.Context, opts ListOptions) ([]User, error) {
	var users []User
	path := withQuery("/users/", pageQuery(url.Values{}, opts))
	if err := s.c.gw.Get(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}
