package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperrors "team-schedule-backend/internal/errors"
	"team-schedule-backend/internal/mocks"
	"team-schedule-backend/internal/notify"
	"team-schedule-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testDocKey = "default"

var serviceNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// ScheduleServiceTestSuite defines the test suite for ScheduleService
type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockScheduleRepositoryInterface
	broadcaster *notify.Broadcaster
	svc         *ScheduleService
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockScheduleRepositoryInterface(suite.ctrl)
	suite.broadcaster = notify.NewBroadcaster()
	suite.svc = NewScheduleService(suite.mockRepo, nil, suite.broadcaster, validator.New(), testDocKey)
	suite.svc.now = func() time.Time { return serviceNow }
}

func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleServiceTestSuite) storedDoc(doc *schedule.Document) json.RawMessage {
	raw, err := json.Marshal(doc)
	suite.Require().NoError(err)
	return raw
}

func (suite *ScheduleServiceTestSuite) TestGetDocument_FirstReadPersistsSkeleton() {
	suite.mockRepo.EXPECT().Get(testDocKey).Return(nil, nil)

	var persisted []byte
	suite.mockRepo.EXPECT().Put(testDocKey, gomock.Any()).
		DoAndReturn(func(_ string, doc json.RawMessage) error {
			persisted = doc
			return nil
		})

	doc, err := suite.svc.GetDocument()
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 2, doc.SchemaVersion)
	assert.Empty(suite.T(), doc.Shifts)
	assert.Equal(suite.T(), "2024-06-01T12:00:00Z", doc.UpdatedAt)

	var onDisk schedule.Document
	suite.Require().NoError(json.Unmarshal(persisted, &onDisk))
	assert.Equal(suite.T(), doc.UpdatedAt, onDisk.UpdatedAt)
}

func (suite *ScheduleServiceTestSuite) TestGetDocument_ExistingDocument() {
	stored := schedule.NewSkeleton("2024-01-01T00:00:00Z")
	stored.Shifts = []schedule.Shift{{ID: "s1", Person: "Ann", Day: "Mon", Start: "09:00", End: "17:00", EndDay: "Mon"}}
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(stored), nil)

	doc, err := suite.svc.GetDocument()
	suite.Require().NoError(err)
	assert.Len(suite.T(), doc.Shifts, 1)
	assert.Equal(suite.T(), "2024-01-01T00:00:00Z", doc.UpdatedAt)
}

func (suite *ScheduleServiceTestSuite) TestSaveDocument_Success() {
	prev := schedule.NewSkeleton("2024-01-01T00:00:00Z")
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(prev), nil)

	var persisted []byte
	suite.mockRepo.EXPECT().Put(testDocKey, gomock.Any()).
		DoAndReturn(func(_ string, doc json.RawMessage) error {
			persisted = doc
			return nil
		})

	events, unsubscribe := suite.broadcaster.Subscribe()
	defer unsubscribe()

	shifts := []schedule.Shift{{ID: "s1", Person: "Ann", Day: "Mon", Start: "22:00", End: "02:00"}}
	updatedAt, err := suite.svc.SaveDocument(schedule.DocumentPatch{Shifts: &shifts}, false)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "2024-06-01T12:00:00Z", updatedAt)

	var onDisk schedule.Document
	suite.Require().NoError(json.Unmarshal(persisted, &onDisk))
	assert.Equal(suite.T(), "Tue", onDisk.Shifts[0].EndDay)

	select {
	case got := <-events:
		assert.Equal(suite.T(), updatedAt, got)
	default:
		suite.T().Fatal("expected a broadcast after a successful write")
	}
}

func (suite *ScheduleServiceTestSuite) TestSaveDocument_StaleTimestampConflict() {
	prev := schedule.NewSkeleton("2024-01-02T00:00:00Z")
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(prev), nil)

	shifts := []schedule.Shift{{ID: "s1", Person: "Ann", Day: "Mon", Start: "09:00", End: "17:00"}}
	_, err := suite.svc.SaveDocument(schedule.DocumentPatch{
		Shifts:    &shifts,
		UpdatedAt: "2024-01-01T00:00:00Z",
	}, false)

	var conflict *apperrors.ConflictError
	suite.Require().True(errors.As(err, &conflict))
	assert.Equal(suite.T(), "2024-01-02T00:00:00Z", conflict.PrevUpdatedAt)
}

func (suite *ScheduleServiceTestSuite) TestSaveDocument_ForceBypassesConflict() {
	prev := schedule.NewSkeleton("2024-01-02T00:00:00Z")
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(prev), nil)
	suite.mockRepo.EXPECT().Put(testDocKey, gomock.Any()).Return(nil)

	shifts := []schedule.Shift{{ID: "s1", Person: "Ann", Day: "Mon", Start: "09:00", End: "17:00"}}
	_, err := suite.svc.SaveDocument(schedule.DocumentPatch{
		Shifts:    &shifts,
		UpdatedAt: "2024-01-01T00:00:00Z",
	}, true)
	suite.Require().NoError(err)
}

func (suite *ScheduleServiceTestSuite) TestSaveDocument_AgentOnlyWriteBypassesConflict() {
	prev := schedule.NewSkeleton("2024-01-02T00:00:00Z")
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(prev), nil)
	suite.mockRepo.EXPECT().Put(testDocKey, gomock.Any()).Return(nil)

	agents := []schedule.Agent{{ID: "a1", FirstName: "Ann", LastName: "Lee"}}
	_, err := suite.svc.SaveDocument(schedule.DocumentPatch{
		Agents:    &agents,
		UpdatedAt: "2024-01-01T00:00:00Z",
	}, false)
	suite.Require().NoError(err)
}

func (suite *ScheduleServiceTestSuite) TestSaveDocument_ValidationErrorNothingPersisted() {
	prev := schedule.NewSkeleton("2024-01-01T00:00:00Z")
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(prev), nil)

	shifts := []schedule.Shift{{ID: "s1", Person: "", Day: "Mon", Start: "09:00", End: "17:00"}}
	_, err := suite.svc.SaveDocument(schedule.DocumentPatch{Shifts: &shifts}, false)

	var verr *schedule.ValidationErrors
	suite.Require().True(errors.As(err, &verr))
}

func (suite *ScheduleServiceTestSuite) TestSaveDocument_PersistFailure() {
	prev := schedule.NewSkeleton("2024-01-01T00:00:00Z")
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(prev), nil)
	suite.mockRepo.EXPECT().Put(testDocKey, gomock.Any()).Return(errors.New("disk full"))

	shifts := []schedule.Shift{{ID: "s1", Person: "Ann", Day: "Mon", Start: "09:00", End: "17:00"}}
	_, err := suite.svc.SaveDocument(schedule.DocumentPatch{Shifts: &shifts}, false)

	var werr *apperrors.WriteError
	suite.Require().True(errors.As(err, &werr))
}

func (suite *ScheduleServiceTestSuite) TestUpsertAgents_MergesByIDAndGeneratesIDs() {
	stored := schedule.NewSkeleton("2024-01-01T00:00:00Z")
	stored.Agents = []schedule.Agent{{ID: "a1", FirstName: "Ann", LastName: "Lee"}}
	stored.Shifts = []schedule.Shift{{ID: "s1", Person: "Ann Lee", AgentID: "a1", Day: "Mon", Start: "09:00", End: "17:00", EndDay: "Mon"}}
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(stored), nil)

	var persisted []byte
	suite.mockRepo.EXPECT().Put(testDocKey, gomock.Any()).
		DoAndReturn(func(_ string, doc json.RawMessage) error {
			persisted = doc
			return nil
		})

	_, err := suite.svc.UpsertAgents(&AgentsUpdateRequest{Agents: []AgentInput{
		{ID: "a1", FirstName: "Anna", LastName: "Lee"},
		{FirstName: "Ben", LastName: "Ray"},
	}})
	suite.Require().NoError(err)

	var onDisk schedule.Document
	suite.Require().NoError(json.Unmarshal(persisted, &onDisk))

	suite.Require().Len(onDisk.Agents, 2)
	assert.Equal(suite.T(), "Anna", onDisk.Agents[0].FirstName)
	assert.NotEmpty(suite.T(), onDisk.Agents[1].ID)
	// Schedule data is untouched and the index reflects the merge.
	assert.Len(suite.T(), onDisk.Shifts, 1)
	assert.Equal(suite.T(), "a1", onDisk.AgentsIndex["ann lee"])
	assert.Equal(suite.T(), onDisk.Agents[1].ID, onDisk.AgentsIndex["ben ray"])
}

func (suite *ScheduleServiceTestSuite) TestUpsertAgents_RejectsNamelessAgent() {
	_, err := suite.svc.UpsertAgents(&AgentsUpdateRequest{Agents: []AgentInput{{ID: "a1"}}})

	var fieldErrs validator.ValidationErrors
	suite.Require().True(errors.As(err, &fieldErrs))
}

func (suite *ScheduleServiceTestSuite) TestApplyShiftBatch_DeletesBeforeUpserts() {
	stored := schedule.NewSkeleton("2024-01-01T00:00:00Z")
	stored.Shifts = []schedule.Shift{
		{ID: "s1", Person: "Ann", Day: "Mon", Start: "09:00", End: "17:00", EndDay: "Mon"},
		{ID: "s2", Person: "Ben", Day: "Tue", Start: "09:00", End: "17:00", EndDay: "Tue"},
	}
	suite.mockRepo.EXPECT().Get(testDocKey).Return(suite.storedDoc(stored), nil)

	var persisted []byte
	suite.mockRepo.EXPECT().Put(testDocKey, gomock.Any()).
		DoAndReturn(func(_ string, doc json.RawMessage) error {
			persisted = doc
			return nil
		})

	_, err := suite.svc.ApplyShiftBatch(&ShiftBatchRequest{
		Deletes: []string{"s1"},
		Upserts: []schedule.Shift{
			{ID: "s1", Person: "Ann", Day: "Wed", Start: "22:00", End: "02:00"},
			{ID: "s2", Person: "Ben", Day: "Tue", Start: "10:00", End: "18:00"},
		},
	})
	suite.Require().NoError(err)

	var onDisk schedule.Document
	suite.Require().NoError(json.Unmarshal(persisted, &onDisk))

	suite.Require().Len(onDisk.Shifts, 2)
	// s1 was deleted then re-upserted, so it lands after s2 and carries
	// the normalized endDay of the new times.
	assert.Equal(suite.T(), "s2", onDisk.Shifts[0].ID)
	assert.Equal(suite.T(), "18:00", onDisk.Shifts[0].End)
	assert.Equal(suite.T(), "s1", onDisk.Shifts[1].ID)
	assert.Equal(suite.T(), "Thu", onDisk.Shifts[1].EndDay)
}

func (suite *ScheduleServiceTestSuite) TestApplyShiftBatch_RejectsMalformedUpsert() {
	_, err := suite.svc.ApplyShiftBatch(&ShiftBatchRequest{
		Upserts: []schedule.Shift{{ID: "s1", Person: "Ann", Day: "Mon", Start: "24:00", End: "17:00"}},
	})

	var verr *schedule.ValidationErrors
	suite.Require().True(errors.As(err, &verr))
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
