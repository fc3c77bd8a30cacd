package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driven"
)

// Ensure GroupAPI implements the interface.
var _ driven.GroupAPI = (*GroupAPI)(nil)

// GroupAPI provides group CRUD over the backend.
type GroupAPI struct {
	client *Client
}

// NewGroupAPI creates a group API over the shared client.
func NewGroupAPI(client *Client) *GroupAPI {
	return &GroupAPI{client: client}
}

type groupRecord struct {
	ID        json.RawMessage `json:"id"`
	Name      string          `json:"name"`
	GroupName string          `json:"group_name"`
	CreatedAt string          `json:"created_at"`
}

func normalizeGroup(r groupRecord) domain.Group {
	return domain.Group{
		ID:        flexibleID(r.ID),
		Name:      firstNonEmpty(r.Name, r.GroupName),
		CreatedAt: parseTime(r.CreatedAt),
	}
}

// ListGroups fetches all groups from GET /groups.
func (a *GroupAPI) ListGroups(ctx context.Context) ([]domain.Group, error) {
	data, err := a.client.request(ctx, "GET", "/groups", nil, "")
	if err != nil {
		return nil, err
	}

	var records []groupRecord
	if err := json.Unmarshal(data, &records); err != nil {
		var envelope struct {
			Groups []groupRecord `json:"groups"`
			Data   []groupRecord `json:"data"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("decode group list: %w", err)
		}
		records = envelope.Groups
		if records == nil {
			records = envelope.Data
		}
	}

	groups := make([]domain.Group, 0, len(records))
	for i := range records {
		groups = append(groups, normalizeGroup(records[i]))
	}
	return groups, nil
}

// CreateGroup creates a group via POST /groups.
func (a *GroupAPI) CreateGroup(ctx context.Context, name string) (domain.Group, error) {
	if name == "" {
		return domain.Group{}, domain.ErrInvalidInput
	}

	payload := map[string]string{"name": name}
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Group{}, err
	}

	data, err := a.client.request(ctx, "POST", "/groups", body, "application/json")
	if err != nil {
		return domain.Group{}, err
	}

	var record groupRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// Some builds only acknowledge; return the name and let the next
		// refresh supply the backend identifier.
		return domain.Group{Name: name}, nil
	}
	group := normalizeGroup(record)
	if group.Name == "" {
		group.Name = name
	}
	return group, nil
}

// DeleteGroup deletes a group via DELETE /groups/{id}. A rejection
// because resumes are still linked surfaces as domain.ErrGroupHasResumes
// rather than a generic failure.
func (a *GroupAPI) DeleteGroup(ctx context.Context, id string) (domain.MutationResult, error) {
	data, err := a.client.del(ctx, "/groups/"+url.PathEscape(id))
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			err = classifyGroupDeleteError(apiErr.Message, err)
		}
		return domain.MutationResult{Success: false, Message: err.Error()}, err
	}

	result := ackResult(data)
	if !result.Success {
		err := classifyGroupDeleteError(result.Message, fmt.Errorf("delete group: %s", result.Message))
		return result, err
	}
	return result, nil
}
