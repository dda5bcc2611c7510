package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SignupInput holds the fields of the signup request.
type SignupInput struct {
	Username          string  `json:"username"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	TeamID            *uint64 `json:"teamId,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// SignupResponse is the payload returned by a successful signup.
type SignupResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Signup registers a new user. Signup is not a cached query and
// invalidates nothing.
func (c *Client) Signup(ctx context.Context, input SignupInput) (*SignupResponse, error) {
	var resp SignupResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SigninResponse is the payload returned by a successful signin.
type SigninResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Signin authenticates and stores the returned bearer token on the client.
// The cache is dropped wholesale because the session identity changed.
func (c *Client) Signin(ctx context.Context, email, password string) (*SigninResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp SigninResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", body, &resp); err != nil {
		return nil, err
	}

	c.cache.clear()
	c.SetToken(resp.Token)
	return &resp, nil
}

// Signout revokes the current token server-side and forgets it locally.
func (c *Client) Signout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/signout", nil, nil); err != nil {
		return err
	}

	c.SetToken("")
	c.cache.clear()
	return nil
}

// GetAuthUser returns the authenticated principal.
func (c *Client) GetAuthUser(ctx context.Context) (User, error) {
	return query(ctx, c, "auth/me", "/auth/me", func(User) []Tag {
		return []Tag{{Type: TagTypeUsers}}
	})
}

// GetUsers returns all users.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	return query(ctx, c, "users", "/users", func([]User) []Tag {
		return []Tag{{Type: TagTypeUsers}}
	})
}

// GetUser returns a single user by ID.
func (c *Client) GetUser(ctx context.Context, userID uint64) (User, error) {
	key := fmt.Sprintf("users/%d", userID)
	return query(ctx, c, key, "/users/"+fmt.Sprint(userID), func(User) []Tag {
		return []Tag{{Type: TagTypeUsers}}
	})
}

// UpdateUserInput holds the updatable user fields.
type UpdateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUser updates a user's username and email and invalidates the
// cached user queries that included the record.
func (c *Client) UpdateUser(ctx context.Context, userID uint64, input UpdateUserInput) (User, error) {
	body := map[string]UpdateUserInput{"user": input}

	var user User
	path := "/users/" + fmt.Sprint(userID)
	err := c.mutate(ctx, http.MethodPatch, path, body, &user, []Tag{
		{Type: TagTypeUsers, ID: userID},
	})
	return user, err
}

// GetTeams returns all teams enriched with role usernames.
func (c *Client) GetTeams(ctx context.Context) ([]Team, error) {
	return query(ctx, c, "teams", "/teams", func([]Team) []Tag {
		return []Tag{{Type: TagTypeTeams}}
	})
}

// Search runs a free-text search. Results are cached under no tags, so no
// mutation invalidates them; concurrent identical searches still collapse
// into one request.
func (c *Client) Search(ctx context.Context, q string) (*SearchResults, error) {
	path := "/search?query=" + url.QueryEscape(q)
	results, err := query(ctx, c, "search?query="+q, path, func(*SearchResults) []Tag {
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
