// internal/commerce/blog.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListBlogPosts retrieves published blog posts from the CMS
func (c *Client) ListBlogPosts(ctx context.Context, limit, offset int) ([]BlogPost, int, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var resp struct {
		Posts []BlogPost `json:"posts"`
		Count int        `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/store/blog/posts", query, "", nil, &resp); err != nil {
		return nil, 0, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return resp.Posts, resp.Count, nil
}

// GetBlogPost retrieves a blog post by slug
func (c *Client) GetBlogPost(ctx context.Context, slug string) (*BlogPost, error) {
	var resp struct {
		Post BlogPost `json:"post"`
	}
	if err := c.do(ctx, http.MethodGet, "/store/blog/posts/"+url.PathEscape(slug), nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Post, nil
}
