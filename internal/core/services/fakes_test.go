package services

import (
	"context"
	"io"
	"strings"
	"sync/atomic"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// fakeResumeAPI is a scriptable driven.ResumeAPI. A non-nil block
// channel makes ListResumes wait until it is closed, with started
// signalling that the call is in flight.
type fakeResumeAPI struct {
	resumes   []domain.Resume
	listErr   error
	listCalls atomic.Int32
	block     chan struct{}
	started   chan struct{}

	deleteResult domain.MutationResult
	deleteErr    error
	deleteCalls  atomic.Int32

	uploadReport domain.UploadReport
	uploadErr    error
	uploadCalls  atomic.Int32
}

func (f *fakeResumeAPI) ListResumes(ctx context.Context) ([]domain.Resume, error) {
	f.listCalls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Resume, len(f.resumes))
	copy(out, f.resumes)
	return out, nil
}

func (f *fakeResumeAPI) UploadResumes(ctx context.Context, paths []string) (domain.UploadReport, error) {
	f.uploadCalls.Add(1)
	return f.uploadReport, f.uploadErr
}

func (f *fakeResumeAPI) DeleteResume(ctx context.Context, id string) (domain.MutationResult, error) {
	f.deleteCalls.Add(1)
	return f.deleteResult, f.deleteErr
}

func (f *fakeResumeAPI) FetchFile(ctx context.Context, filename string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("file contents")), nil
}

type fakeCommentAPI struct {
	setResult    domain.MutationResult
	setErr       error
	setCalls     atomic.Int32
	deleteResult domain.MutationResult
	deleteErr    error
}

func (f *fakeCommentAPI) SetComment(ctx context.Context, resumeID, body, author string) (domain.MutationResult, error) {
	f.setCalls.Add(1)
	return f.setResult, f.setErr
}

func (f *fakeCommentAPI) DeleteComment(ctx context.Context, resumeID string) (domain.MutationResult, error) {
	return f.deleteResult, f.deleteErr
}

type fakeGroupAPI struct {
	groups    []domain.Group
	listErr   error
	listCalls atomic.Int32

	created   domain.Group
	createErr error

	deleteResult domain.MutationResult
	deleteErr    error
}

func (f *fakeGroupAPI) ListGroups(ctx context.Context) ([]domain.Group, error) {
	f.listCalls.Add(1)
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Group, len(f.groups))
	copy(out, f.groups)
	return out, nil
}

func (f *fakeGroupAPI) CreateGroup(ctx context.Context, name string) (domain.Group, error) {
	return f.created, f.createErr
}

func (f *fakeGroupAPI) DeleteGroup(ctx context.Context, id string) (domain.MutationResult, error) {
	return f.deleteResult, f.deleteErr
}

type fakeSearchAPI struct {
	response    domain.SearchResponse
	err         error
	calls       atomic.Int32
	lastQuery   string
	lastGroup   string
	lastJDPath  string
	lastJDGroup string
}

func (f *fakeSearchAPI) Search(ctx context.Context, query, group string) (domain.SearchResponse, error) {
	f.calls.Add(1)
	f.lastQuery = query
	f.lastGroup = group
	return f.response, f.err
}

func (f *fakeSearchAPI) MatchJobDescription(ctx context.Context, path, group string) (domain.SearchResponse, error) {
	f.calls.Add(1)
	f.lastJDPath = path
	f.lastJDGroup = group
	return f.response, f.err
}
