package backend

import (
	"context"
	"net/url"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driven"
)

// Ensure CommentAPI implements the interface.
var _ driven.CommentAPI = (*CommentAPI)(nil)

// CommentAPI manages the single outstanding comment per resume.
type CommentAPI struct {
	client *Client
}

// NewCommentAPI creates a comment API over the shared client.
func NewCommentAPI(client *Client) *CommentAPI {
	return &CommentAPI{client: client}
}

// SetComment creates or updates the comment via POST /cvs/{id}/comment.
// Length validation happens at the service layer before this is reached.
func (a *CommentAPI) SetComment(ctx context.Context, resumeID, body, author string) (domain.MutationResult, error) {
	payload := map[string]string{
		"comment": body,
		"author":  author,
	}

	var ack struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := a.client.postJSON(ctx, "/cvs/"+url.PathEscape(resumeID)+"/comment", payload, &ack); err != nil {
		return domain.MutationResult{Success: false, Message: err.Error()}, err
	}

	success := ack.Success == nil || *ack.Success
	return domain.MutationResult{Success: success, Message: ack.Message}, nil
}

// DeleteComment removes the comment via DELETE /cvs/{id}/comment.
func (a *CommentAPI) DeleteComment(ctx context.Context, resumeID string) (domain.MutationResult, error) {
	data, err := a.client.del(ctx, "/cvs/"+url.PathEscape(resumeID)+"/comment")
	if err != nil {
		return domain.MutationResult{Success: false, Message: err.Error()}, err
	}
	return ackResult(data), nil
}
