package handler

import (
	"net/http"
	"testing"

	domainerrors "quill/internal/domain/errors"
	mockusecase "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProjectHandler(t *testing.T) (*ProjectHandler, *mockusecase.MockProjectUsecase) {
	projectUC := mockusecase.NewMockProjectUsecase(t)
	h := NewProjectHandler(ProjectHandlerParams{ProjectUC: projectUC, Logger: newDiscardLogger()})

	return h, projectUC
}

func TestProjectHandler_CreateProject_MissingUserContext(t *testing.T) {
	e := newTestEcho()
	h, projectUC := newProjectHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/projects",
		`{"title":"Annual Report","description":"Yearly results","doc_type":"docx"}`)

	require.NoError(t, h.CreateProject(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	projectUC.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectHandler_GetProject_InvalidIDFormat(t *testing.T) {
	e := newTestEcho()
	h, projectUC := newProjectHandler(t)

	c, rec := newGetContext(e, "/projects/not-a-uuid")
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetProject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	projectUC.AssertNotCalled(t, "GetProject", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectHandler_GetProject_NotFound(t *testing.T) {
	e := newTestEcho()
	h, projectUC := newProjectHandler(t)

	userID := uuid.New()
	projectID := uuid.New()
	projectUC.EXPECT().
		GetProject(mock.Anything, userID, projectID).
		Return(nil, domainerrors.ErrProjectNotFound)

	c, rec := newGetContext(e, "/projects/"+projectID.String())
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	require.NoError(t, h.GetProject(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROJECT_NOT_FOUND")
}

func TestProjectHandler_ExportProject_SetsAttachmentHeaders(t *testing.T) {
	e := newTestEcho()
	h, projectUC := newProjectHandler(t)

	userID := uuid.New()
	projectID := uuid.New()
	content := []byte("PK\x03\x04 fake zip payload")
	projectUC.EXPECT().
		ExportProject(mock.Anything, userID, projectID).
		Return(&usecase.ExportOutput{
			Content:     content,
			Filename:    "Annual Report.docx",
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}, nil)

	c, rec := newGetContext(e, "/projects/"+projectID.String()+"/export")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	require.NoError(t, h.ExportProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="Annual Report.docx"`,
		rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestProjectHandler_DeleteProject_Success(t *testing.T) {
	e := newTestEcho()
	h, projectUC := newProjectHandler(t)

	userID := uuid.New()
	projectID := uuid.New()
	projectUC.EXPECT().
		DeleteProject(mock.Anything, userID, projectID).
		Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/projects/"+projectID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	require.NoError(t, h.DeleteProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
