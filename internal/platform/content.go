package platform

import (
	"context"
	"fmt"
	"net/http"

	"trade-tracker-go/internal/models"
)

// Admin back-office adapters. Every content resource exposes the same
// conventional REST shape: list/create/update/delete under /api/admin, a
// data field on success, and a {message, errors?} envelope on 4xx.

// listEnvelope is the response schema of collection endpoints.
type listEnvelope[T any] struct {
	Data    []T    `json:"data"`
	Message string `json:"message"`
}

// itemEnvelope is the response schema of single-resource endpoints.
type itemEnvelope[T any] struct {
	Data    *T     `json:"data"`
	Message string `json:"message"`
}

func listResource[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var env listEnvelope[T]
	req := c.client.R().SetResult(&env)
	if _, err := c.doRequest(ctx, http.MethodGet, path, req); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("failed to list %s: response missing data array", path)
	}
	return env.Data, nil
}

func createResource[T any](ctx context.Context, c *Client, path string, body T) (*T, error) {
	var env itemEnvelope[T]
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&env)
	if _, err := c.doRequest(ctx, http.MethodPost, path, req); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("failed to create %s: response missing data object", path)
	}
	return env.Data, nil
}

func updateResource[T any](ctx context.Context, c *Client, path string, id int64, body T) (*T, error) {
	var env itemEnvelope[T]
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&env)
	url := fmt.Sprintf("%s/%d", path, id)
	if _, err := c.doRequest(ctx, http.MethodPut, url, req); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", url, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("failed to update %s: response missing data object", url)
	}
	return env.Data, nil
}

func deleteResource(ctx context.Context, c *Client, path string, id int64) error {
	url := fmt.Sprintf("%s/%d", path, id)
	req := c.client.R()
	if _, err := c.doRequest(ctx, http.MethodDelete, url, req); err != nil {
		return fmt.Errorf("failed to delete %s: %w", url, err)
	}
	return nil
}

const (
	categoriesPath = "/api/admin/categories"
	tagsPath       = "/api/admin/tags"
	lessonsPath    = "/api/admin/lessons"
	plansPath      = "/api/admin/membership-plans"
	popupsPath     = "/api/admin/popups"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return listResource[models.Category](ctx, c, categoriesPath)
}

func (c *Client) CreateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	return createResource(ctx, c, categoriesPath, cat)
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, cat models.Category) (*models.Category, error) {
	return updateResource(ctx, c, categoriesPath, id, cat)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return deleteResource(ctx, c, categoriesPath, id)
}

func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	return listResource[models.Tag](ctx, c, tagsPath)
}

func (c *Client) CreateTag(ctx context.Context, tag models.Tag) (*models.Tag, error) {
	return createResource(ctx, c, tagsPath, tag)
}

func (c *Client) UpdateTag(ctx context.Context, id int64, tag models.Tag) (*models.Tag, error) {
	return updateResource(ctx, c, tagsPath, id, tag)
}

func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return deleteResource(ctx, c, tagsPath, id)
}

func (c *Client) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	return listResource[models.Lesson](ctx, c, lessonsPath)
}

func (c *Client) CreateLesson(ctx context.Context, l models.Lesson) (*models.Lesson, error) {
	return createResource(ctx, c, lessonsPath, l)
}

func (c *Client) UpdateLesson(ctx context.Context, id int64, l models.Lesson) (*models.Lesson, error) {
	return updateResource(ctx, c, lessonsPath, id, l)
}

func (c *Client) DeleteLesson(ctx context.Context, id int64) error {
	return deleteResource(ctx, c, lessonsPath, id)
}

func (c *Client) ListMembershipPlans(ctx context.Context) ([]models.MembershipPlan, error) {
	return listResource[models.MembershipPlan](ctx, c, plansPath)
}

func (c *Client) CreateMembershipPlan(ctx context.Context, p models.MembershipPlan) (*models.MembershipPlan, error) {
	return createResource(ctx, c, plansPath, p)
}

func (c *Client) UpdateMembershipPlan(ctx context.Context, id int64, p models.MembershipPlan) (*models.MembershipPlan, error) {
	return updateResource(ctx, c, plansPath, id, p)
}

func (c *Client) DeleteMembershipPlan(ctx context.Context, id int64) error {
	return deleteResource(ctx, c, plansPath, id)
}

func (c *Client) ListPopups(ctx context.Context) ([]models.Popup, error) {
	return listResource[models.Popup](ctx, c, popupsPath)
}

func (c *Client) CreatePopup(ctx context.Context, p models.Popup) (*models.Popup, error) {
	return createResource(ctx, c, popupsPath, p)
}

func (c *Client) UpdatePopup(ctx context.Context, id int64, p models.Popup) (*models.Popup, error) {
	return updateResource(ctx, c, popupsPath, id, p)
}

func (c *Client) DeletePopup(ctx context.Context, id int64) error {
	return deleteResource(ctx, c, popupsPath, id)
}
