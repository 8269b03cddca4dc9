package impl

import (
	"context"
	"strings"
	"testing"

	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOutlineService(t *testing.T) (usecase.OutlineUsecase, *mockSvc.MockContentGenerator) {
	generator := mockSvc.NewMockContentGenerator(t)

	service := NewOutlineService(OutlineServiceParams{
		Generator: generator,
		Logger:    newDiscardLogger(),
	})

	return service, generator
}

func TestOutlineService_SuggestOutline_StripsListMarkers(t *testing.T) {
	service, generator := createTestOutlineService(t)

	ctx := context.Background()

	generator.EXPECT().
		Complete(ctx, mock.AnythingOfType("string")).
		Return("1. Intro\n- Background\n\n* Conclusion", nil)

	titles, err := service.SuggestOutline(ctx, &usecase.OutlineInput{
		Topic:   "Climate policy",
		DocType: "docx",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Intro", "Background", "Conclusion"}, titles)
}

func TestOutlineService_SuggestOutline_DocTypeSelectsItemNoun(t *testing.T) {
	tests := []struct {
		name    string
		docType string
		want    string
	}{
		{name: "slides ask for slide titles", docType: "pptx", want: "Slide Titles"},
		{name: "documents ask for section headers", docType: "docx", want: "Section Headers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, generator := createTestOutlineService(t)

			ctx := context.Background()
			generator.EXPECT().
				Complete(ctx, mock.MatchedBy(func(prompt string) bool {
					return strings.Contains(prompt, tt.want)
				})).
				Return("One\nTwo", nil)

			_, err := service.SuggestOutline(ctx, &usecase.OutlineInput{Topic: "Anything", DocType: tt.docType})
			require.NoError(t, err)
		})
	}
}

func TestOutlineService_SuggestOutline_GeneratorFailureReturnsEmptyList(t *testing.T) {
	service, generator := createTestOutlineService(t)

	ctx := context.Background()

	generator.EXPECT().
		Complete(ctx, mock.AnythingOfType("string")).
		Return("", errors.New("model unavailable"))

	titles, err := service.SuggestOutline(ctx, &usecase.OutlineInput{
		Topic:   "Climate policy",
		DocType: "pptx",
	})

	// Advisory endpoint: failure degrades to an empty list, not an error.
	require.NoError(t, err)
	require.NotNil(t, titles)
	assert.Empty(t, titles)
}

func TestCleanOutlineLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "numbered list",
			raw:  "1. Intro\n2. Body\n3. Conclusion",
			want: []string{"Intro", "Body", "Conclusion"},
		},
		{
			name: "mixed bullets and blanks",
			raw:  "• First\n\n- Second\n* Third\n",
			want: []string{"First", "Second", "Third"},
		},
		{
			name: "marker-only lines dropped",
			raw:  "1.\n- Real Title",
			want: []string{"Real Title"},
		},
		{
			name: "interior digits preserved",
			raw:  "10. Top 10 Trends",
			want: []string{"Top 10 Trends"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanOutlineLines(tt.raw))
		})
	}
}
