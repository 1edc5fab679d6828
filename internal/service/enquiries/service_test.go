package enquiries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	enquiryRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/enquiry"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
)

type stubEnquiryRepo struct {
	enquiries  []*domain.Enquiry
	lastStatus *domain.EnquiryStatus
	updatedID  int64
	updatedTo  domain.EnquiryStatus
	err        error
}

func (r *stubEnquiryRepo) List(ctx context.Context, status *domain.EnquiryStatus) ([]*domain.Enquiry, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastStatus = status
	return r.enquiries, nil
}

func (r *stubEnquiryRepo) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) error {
	if r.err != nil {
		return r.err
	}
	r.updatedID = id
	r.updatedTo = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestList_FiltersByStatus(t *testing.T) {
	repo := &stubEnquiryRepo{enquiries: []*domain.Enquiry{{ID: 1, Status: domain.EnquiryStatusNew}}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), ptr.Ptr("new"))
	require.NoError(t, err)

	assert.Len(t, resp.Enquiries, 1)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.EnquiryStatusNew, *repo.lastStatus)
}

func TestList_NoStatusMeansAll(t *testing.T) {
	repo := &stubEnquiryRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, repo.lastStatus)
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&stubEnquiryRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), ptr.Ptr("archived"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := &stubEnquiryRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, "contacted")
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, domain.EnquiryStatusContacted, repo.updatedTo)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &stubEnquiryRepo{err: enquiryRepo.ErrEnquiryNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, "closed")

	assert.ErrorIs(t, err, ErrEnquiryNotFound)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &stubEnquiryRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, "done")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Zero(t, repo.updatedID)
}
