package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) ConfirmProposedEntries(ctx context.Context, proposed []dto.ProposedEntry, creatorUserID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, proposed, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

type JournalEntryHandlerTestSuite struct {
	suite.Suite
	journalService *MockJournalEntryService
	router         *gin.Engine
}

func (s *JournalEntryHandlerTestSuite) SetupTest() {
	s.journalService = new(MockJournalEntryService)
	s.router = setupRouter(&portssvc.ServiceContainer{
		JournalEntry: s.journalService,
	})
}

func (s *JournalEntryHandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *JournalEntryHandlerTestSuite) TestCreateEntry_Success() {
	entryID := uuid.NewString()
	s.journalService.On("CreateEntry", mock.Anything, mock.Anything, "test-user").
		Return(&domain.JournalEntry{
			EntryID:     entryID,
			EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Description: "Venda de mercadorias",
			Status:      domain.Posted,
		}, nil).Once()

	w := s.postJSON("/api/v1/journal-entries", `{
		"entryDate": "2024-03-15T00:00:00Z",
		"description": "Venda de mercadorias",
		"reference": "NF-1001"
	}`)

	require.Equal(s.T(), http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), entryID, resp.EntryID)
	assert.Equal(s.T(), domain.Posted, resp.Status)
	s.journalService.AssertExpectations(s.T())
}

func (s *JournalEntryHandlerTestSuite) TestCreateEntry_MissingDescription() {
	w := s.postJSON("/api/v1/journal-entries", `{"entryDate": "2024-03-15T00:00:00Z"}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	s.journalService.AssertNotCalled(s.T(), "CreateEntry")
}

func (s *JournalEntryHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	s.journalService.On("GetEntryByID", mock.Anything, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/journal-entries/"+entryID, nil)
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	s.journalService.AssertExpectations(s.T())
}

func (s *JournalEntryHandlerTestSuite) TestConfirmProposedEntries_AllConfirmed() {
	confirmed := []domain.JournalEntry{
		{EntryID: uuid.NewString(), Description: "Primeira", Status: domain.Posted},
		{EntryID: uuid.NewString(), Description: "Segunda", Status: domain.Posted},
	}
	s.journalService.On("ConfirmProposedEntries", mock.Anything, mock.Anything, "test-user").
		Return(confirmed, nil).Once()

	w := s.postJSON("/api/v1/journal-entries/confirm", `{"entries": [
		{"entryDate": "2024-03-15T00:00:00Z", "description": "Primeira",
		 "debits": [{"account": "Caixa", "value": 100}],
		 "credits": [{"account": "Receita de Vendas", "value": 100}]},
		{"entryDate": "2024-03-16T00:00:00Z", "description": "Segunda",
		 "debits": [{"account": "Caixa", "value": 50}],
		 "credits": [{"account": "Receita de Vendas", "value": 50}]}
	]}`)

	require.Equal(s.T(), http.StatusCreated, w.Code)
	var resp dto.ConfirmProposedEntriesResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(s.T(), resp.Confirmed, 2)
	assert.Empty(s.T(), resp.Error)
	s.journalService.AssertExpectations(s.T())
}

func (s *JournalEntryHandlerTestSuite) TestConfirmProposedEntries_PartialFailure() {
	committed := []domain.JournalEntry{
		{EntryID: uuid.NewString(), Description: "Primeira", Status: domain.Posted},
	}
	batchErr := fmt.Errorf("proposed entry 1 (Segunda): %w", apperrors.ErrUnbalanced)
	s.journalService.On("ConfirmProposedEntries", mock.Anything, mock.Anything, "test-user").
		Return(committed, batchErr).Once()

	w := s.postJSON("/api/v1/journal-entries/confirm", `{"entries": [
		{"entryDate": "2024-03-15T00:00:00Z", "description": "Primeira",
		 "debits": [{"account": "Caixa", "value": 100}],
		 "credits": [{"account": "Receita de Vendas", "value": 100}]},
		{"entryDate": "2024-03-16T00:00:00Z", "description": "Segunda",
		 "debits": [{"account": "Caixa", "value": 90}],
		 "credits": [{"account": "Receita de Vendas", "value": 100}]}
	]}`)

	require.Equal(s.T(), http.StatusMultiStatus, w.Code)
	var resp dto.ConfirmProposedEntriesResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(s.T(), resp.Confirmed, 1)
	assert.Contains(s.T(), resp.Error, "Segunda")
	s.journalService.AssertExpectations(s.T())
}

func (s *JournalEntryHandlerTestSuite) TestConfirmProposedEntries_RejectedBatch() {
	s.journalService.On("ConfirmProposedEntries", mock.Anything, mock.Anything, "test-user").
		Return([]domain.JournalEntry{}, fmt.Errorf("proposed entry 0 (Primeira): %w", apperrors.ErrUnbalanced)).Once()

	w := s.postJSON("/api/v1/journal-entries/confirm", `{"entries": [
		{"entryDate": "2024-03-15T00:00:00Z", "description": "Primeira",
		 "debits": [{"account": "Caixa", "value": 100}],
		 "credits": [{"account": "Receita de Vendas", "value": 90}]}
	]}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	s.journalService.AssertExpectations(s.T())
}

func TestJournalEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalEntryHandlerTestSuite))
}
