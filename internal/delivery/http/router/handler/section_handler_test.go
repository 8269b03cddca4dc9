package handler

import (
	"net/http"
	"testing"

	"quill/internal/domain/entity"
	mockusecase "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSectionHandler(t *testing.T) (*SectionHandler, *mockusecase.MockSectionUsecase) {
	sectionUC := mockusecase.NewMockSectionUsecase(t)
	h := NewSectionHandler(SectionHandlerParams{SectionUC: sectionUC, Logger: newDiscardLogger()})

	return h, sectionUC
}

func TestSectionHandler_GenerateSection_Success(t *testing.T) {
	e := newTestEcho()
	h, sectionUC := newSectionHandler(t)

	userID := uuid.New()
	projectID := uuid.New()
	sectionUC.EXPECT().
		GenerateSection(mock.Anything, userID, projectID, mock.MatchedBy(func(input *usecase.GenerateSectionInput) bool {
			return input.Heading == "Introduction" && input.OrderIndex == 0
		})).
		Return(&entity.DocumentSection{
			ID:        uuid.New(),
			ProjectID: projectID,
			Heading:   "Introduction",
			Content:   "Generated introduction text.",
		}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/projects/"+projectID.String()+"/sections",
		`{"heading":"Introduction","order_index":0}`)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	require.NoError(t, h.GenerateSection(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Generated introduction text.")
}

func TestSectionHandler_GenerateSection_MissingHeading(t *testing.T) {
	e := newTestEcho()
	h, sectionUC := newSectionHandler(t)

	projectID := uuid.New()
	c, rec := newJSONContext(e, http.MethodPost, "/projects/"+projectID.String()+"/sections",
		`{"order_index":2}`)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	require.NoError(t, h.GenerateSection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	sectionUC.AssertNotCalled(t, "GenerateSection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSectionHandler_RefineSection_Success(t *testing.T) {
	e := newTestEcho()
	h, sectionUC := newSectionHandler(t)

	userID := uuid.New()
	sectionID := uuid.New()
	sectionUC.EXPECT().
		RefineSection(mock.Anything, userID, sectionID, "make it more formal").
		Return(&entity.DocumentSection{
			ID:      sectionID,
			Content: "Refined formal text.",
			RefinementHistory: []entity.RefinementRecord{
				{Original: "old", Instruction: "make it more formal", Refined: "Refined formal text."},
			},
		}, nil)

	c, rec := newJSONContext(e, http.MethodPut, "/sections/"+sectionID.String()+"/refine",
		`{"instruction":"make it more formal"}`)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(sectionID.String())

	require.NoError(t, h.RefineSection(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Refined formal text.")
	assert.Contains(t, rec.Body.String(), "refinement_history")
}

func TestSectionHandler_RefineSection_QueryFallback(t *testing.T) {
	e := newTestEcho()
	h, sectionUC := newSectionHandler(t)

	userID := uuid.New()
	sectionID := uuid.New()
	sectionUC.EXPECT().
		RefineSection(mock.Anything, userID, sectionID, "shorten it").
		Return(&entity.DocumentSection{ID: sectionID, Content: "Short."}, nil)

	c, rec := newJSONContext(e, http.MethodPut,
		"/sections/"+sectionID.String()+"/refine?instruction=shorten+it", `{}`)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(sectionID.String())

	require.NoError(t, h.RefineSection(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSectionHandler_RefineSection_MissingInstruction(t *testing.T) {
	e := newTestEcho()
	h, sectionUC := newSectionHandler(t)

	sectionID := uuid.New()
	c, rec := newJSONContext(e, http.MethodPut, "/sections/"+sectionID.String()+"/refine", `{}`)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(sectionID.String())

	require.NoError(t, h.RefineSection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	sectionUC.AssertNotCalled(t, "RefineSection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSectionHandler_RefineSection_MissingUserContext(t *testing.T) {
	e := newTestEcho()
	h, sectionUC := newSectionHandler(t)

	sectionID := uuid.New()
	c, rec := newJSONContext(e, http.MethodPut, "/sections/"+sectionID.String()+"/refine",
		`{"instruction":"rewrite it"}`)
	c.SetParamNames("id")
	c.SetParamValues(sectionID.String())

	require.NoError(t, h.RefineSection(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	sectionUC.AssertNotCalled(t, "RefineSection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
