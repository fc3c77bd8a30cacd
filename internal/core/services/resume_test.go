package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
)

func sampleResumes() []domain.Resume {
	return []domain.Resume{
		{ID: "1", OriginalFilename: "jane.pdf", Status: domain.StatusCompleted, Group: "backend"},
		{ID: "2", OriginalFilename: "bob.docx", Status: domain.StatusProcessing, Group: "frontend"},
		{ID: "3", OriginalFilename: "eve.pdf", Status: domain.StatusCompleted, Group: "backend"},
	}
}

func TestResumeService_InitialPhaseIsIdle(t *testing.T) {
	svc := NewResumeService(&fakeResumeAPI{}, &fakeCommentAPI{})

	assert.Equal(t, driving.PhaseIdle, svc.Phase())
	assert.Empty(t, svc.Resumes(driving.ResumeFilter{}))
	assert.NoError(t, svc.Err())
}

func TestResumeService_RefreshSuccess(t *testing.T) {
	api := &fakeResumeAPI{resumes: sampleResumes()}
	svc := NewResumeService(api, &fakeCommentAPI{})

	err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, driving.PhaseReady, svc.Phase())
	assert.Len(t, svc.Resumes(driving.ResumeFilter{}), 3)
}

func TestResumeService_FailedRefreshRetainsStaleData(t *testing.T) {
	api := &fakeResumeAPI{resumes: sampleResumes()}
	svc := NewResumeService(api, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	api.listErr = errors.New("backend down")
	err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, driving.PhaseError, svc.Phase())
	assert.Error(t, svc.Err())
	assert.Len(t, svc.Resumes(driving.ResumeFilter{}), 3,
		"a failed refresh must not blank out previously loaded data")
}

func TestResumeService_SuccessfulRefreshClearsError(t *testing.T) {
	api := &fakeResumeAPI{listErr: errors.New("backend down")}
	svc := NewResumeService(api, &fakeCommentAPI{})
	require.Error(t, svc.Refresh(context.Background()))

	api.listErr = nil
	api.resumes = sampleResumes()
	require.NoError(t, svc.Refresh(context.Background()))

	assert.Equal(t, driving.PhaseReady, svc.Phase())
	assert.NoError(t, svc.Err())
}

func TestResumeService_ConcurrentRefreshIsNoOp(t *testing.T) {
	api := &fakeResumeAPI{
		resumes: sampleResumes(),
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	svc := NewResumeService(api, &fakeCommentAPI{})

	done := make(chan error, 1)
	go func() {
		done <- svc.Refresh(context.Background())
	}()
	<-api.started

	// Second call while the first is in flight must not hit the backend.
	require.NoError(t, svc.Refresh(context.Background()))
	assert.Equal(t, int32(1), api.listCalls.Load())

	close(api.block)
	require.NoError(t, <-done)
	assert.Len(t, svc.Resumes(driving.ResumeFilter{}), 3)
}

func TestResumeService_CloseDiscardsLateCompletion(t *testing.T) {
	api := &fakeResumeAPI{
		resumes: sampleResumes(),
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	svc := NewResumeService(api, &fakeCommentAPI{})

	done := make(chan error, 1)
	go func() {
		done <- svc.Refresh(context.Background())
	}()
	<-api.started

	svc.Close()
	close(api.block)

	require.NoError(t, <-done)
	assert.Empty(t, svc.Resumes(driving.ResumeFilter{}),
		"fetch completing after Close must not write state")
}

func TestResumeService_RefreshAfterCloseIsNoOp(t *testing.T) {
	api := &fakeResumeAPI{resumes: sampleResumes()}
	svc := NewResumeService(api, &fakeCommentAPI{})
	svc.Close()

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Zero(t, api.listCalls.Load())
}

func TestResumeService_FilterByGroup(t *testing.T) {
	svc := NewResumeService(&fakeResumeAPI{resumes: sampleResumes()}, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	got := svc.Resumes(driving.ResumeFilter{Group: "backend"})

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestResumeService_FilterByStatus(t *testing.T) {
	svc := NewResumeService(&fakeResumeAPI{resumes: sampleResumes()}, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	got := svc.Resumes(driving.ResumeFilter{Status: domain.StatusProcessing})

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestResumeService_Pagination(t *testing.T) {
	svc := NewResumeService(&fakeResumeAPI{resumes: sampleResumes()}, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	page1 := svc.Resumes(driving.ResumeFilter{Page: 1, PageSize: 2})
	page2 := svc.Resumes(driving.ResumeFilter{Page: 2, PageSize: 2})
	page3 := svc.Resumes(driving.ResumeFilter{Page: 3, PageSize: 2})

	assert.Len(t, page1, 2)
	assert.Len(t, page2, 1)
	assert.Empty(t, page3)
}

func TestResumeService_DeleteOptimistic(t *testing.T) {
	api := &fakeResumeAPI{resumes: sampleResumes(), deleteResult: domain.MutationResult{Success: true}}
	svc := NewResumeService(api, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), "2"))

	got := svc.Resumes(driving.ResumeFilter{})
	require.Len(t, got, 2)
	for _, r := range got {
		assert.NotEqual(t, "2", r.ID)
	}
}

func TestResumeService_DeleteRollsBackOnError(t *testing.T) {
	api := &fakeResumeAPI{resumes: sampleResumes(), deleteErr: errors.New("boom")}
	svc := NewResumeService(api, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.Delete(context.Background(), "2")

	require.Error(t, err)
	assert.Len(t, svc.Resumes(driving.ResumeFilter{}), 3, "failed delete must restore the snapshot")
}

func TestResumeService_DeleteRollsBackOnAckFailure(t *testing.T) {
	api := &fakeResumeAPI{
		resumes:      sampleResumes(),
		deleteResult: domain.MutationResult{Success: false, Message: "locked"},
	}
	svc := NewResumeService(api, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.Delete(context.Background(), "2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
	assert.Len(t, svc.Resumes(driving.ResumeFilter{}), 3)
}

func TestResumeService_SetCommentOptimistic(t *testing.T) {
	comments := &fakeCommentAPI{setResult: domain.MutationResult{Success: true}}
	svc := NewResumeService(&fakeResumeAPI{resumes: sampleResumes()}, comments)
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.SetComment(context.Background(), "1", "strong Go background", "hr"))

	got := svc.Resumes(driving.ResumeFilter{})
	require.NotNil(t, got[0].Comment)
	assert.Equal(t, "strong Go background", got[0].Comment.Body)
	assert.NotEmpty(t, got[0].Comment.ID, "optimistic comments carry an ephemeral key")
	assert.WithinDuration(t, time.Now(), got[0].Comment.CreatedAt, time.Minute)
}

func TestResumeService_SetCommentValidatesBeforeNetwork(t *testing.T) {
	comments := &fakeCommentAPI{}
	svc := NewResumeService(&fakeResumeAPI{resumes: sampleResumes()}, comments)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.SetComment(context.Background(), "1", "short", "hr")

	assert.ErrorIs(t, err, domain.ErrCommentLength)
	assert.Zero(t, comments.setCalls.Load())

	err = svc.SetComment(context.Background(), "1", strings.Repeat("x", 201), "hr")
	assert.ErrorIs(t, err, domain.ErrCommentLength)
}

func TestResumeService_SetCommentUnknownResume(t *testing.T) {
	svc := NewResumeService(&fakeResumeAPI{resumes: sampleResumes()}, &fakeCommentAPI{})
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.SetComment(context.Background(), "missing", "a perfectly valid comment", "hr")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumeService_SetCommentRollsBackOnFailure(t *testing.T) {
	comments := &fakeCommentAPI{setErr: errors.New("boom")}
	svc := NewResumeService(&fakeResumeAPI{resumes: sampleResumes()}, comments)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.SetComment(context.Background(), "1", "strong Go background", "hr")

	require.Error(t, err)
	got := svc.Resumes(driving.ResumeFilter{})
	assert.Nil(t, got[0].Comment, "failed comment must be rolled back")
}

func TestResumeService_DeleteCommentRollsBackOnFailure(t *testing.T) {
	resumes := sampleResumes()
	resumes[0].Comment = &domain.ResumeComment{ID: "c1", ResumeID: "1", Body: "existing comment text"}
	comments := &fakeCommentAPI{deleteErr: errors.New("boom")}
	svc := NewResumeService(&fakeResumeAPI{resumes: resumes}, comments)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.DeleteComment(context.Background(), "1")

	require.Error(t, err)
	got := svc.Resumes(driving.ResumeFilter{})
	require.NotNil(t, got[0].Comment)
	assert.Equal(t, "c1", got[0].Comment.ID)
}

func TestResumeService_UploadValidatesBeforeNetwork(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	api := &fakeResumeAPI{}
	svc := NewResumeService(api, &fakeCommentAPI{})

	_, err := svc.Upload(context.Background(), []string{path})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	assert.Zero(t, api.uploadCalls.Load())
}

func TestResumeService_UploadRefreshesCollection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	api := &fakeResumeAPI{
		resumes:      sampleResumes(),
		uploadReport: domain.UploadReport{Successful: 1, Total: 1},
	}
	svc := NewResumeService(api, &fakeCommentAPI{})

	report, err := svc.Upload(context.Background(), []string{path})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Successful)
	assert.Equal(t, int32(1), api.listCalls.Load(), "upload triggers a refresh")
	assert.Len(t, svc.Resumes(driving.ResumeFilter{}), 3)
}

func TestResumeService_Download(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.pdf")
	svc := NewResumeService(&fakeResumeAPI{}, &fakeCommentAPI{})

	require.NoError(t, svc.Download(context.Background(), "cv.pdf", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(data))
}
