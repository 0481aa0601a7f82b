package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

func TestDecodeCallback(t *testing.T) {
	cd := decodeCallback("quiz:ans:12:3")

	assert.Equal(t, actionQuiz, cd.Action)
	assert.Equal(t, quizAnswer, cd.param(0))
	assert.Equal(t, "", cd.param(5))

	n, ok := cd.intParam(1)
	require.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = cd.intParam(0)
	assert.False(t, ok)

	assert.Equal(t, "quiz:ans:12:3", cd.encode())
}

func TestDecodeCallbackWithoutParams(t *testing.T) {
	cd := decodeCallback("careers")

	assert.Equal(t, actionCareers, cd.Action)
	assert.Empty(t, cd.Params)
	assert.Equal(t, "careers", cd.encode())
}

func TestCareersCallbackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   careersPage
		want careersPage
	}{
		{
			name: "defaults",
			in:   careersPage{},
			want: careersPage{Category: catalog.All, Sort: catalog.SortName},
		},
		{
			name: "salary sort",
			in:   careersPage{Page: 3, Category: "technology", Sort: catalog.SortNumericDesc},
			want: careersPage{Page: 3, Category: "technology", Sort: catalog.SortNumericDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseCareersCallback(decodeCallback(buildCareersCallback(tt.in)))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCareersCallbackRejectsMalformed(t *testing.T) {
	for _, data := range []string{"careers", "careers:x:all:n", "careers:-1:all:n", "career:1:all:n", "careers:1:all"} {
		_, ok := parseCareersCallback(decodeCallback(data))
		assert.False(t, ok, data)
	}
}

func TestCallbackDataFitsTelegramLimit(t *testing.T) {
	data := []string{
		buildCareersCallback(careersPage{Page: 99, Category: "healthcare", Sort: catalog.SortNumericDesc}),
		buildCareerCallback(123456),
		buildBookmarkCallback(entities.BookmarkResource, 123456),
		buildMediaCallback("technology", string(entities.UserTypePostgraduate)),
		buildQuizAnswerCallback(9999, 3),
		buildFeedbackCategoryCallback(entities.FeedbackContent),
		buildProfileCallback(string(entities.UserTypeProfessional)),
	}

	for _, d := range data {
		assert.LessOrEqual(t, len(d), 64, d)
	}
}
