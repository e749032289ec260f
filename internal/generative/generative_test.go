package generative

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wordleglobal/glossary/internal/definition"
	"github.com/wordleglobal/glossary/internal/inference"
	mock_inference "github.com/wordleglobal/glossary/internal/mocks/inference"
)

func TestFallback_Generate(t *testing.T) {
	tests := []struct {
		name         string
		apiKey       string
		languageCode string
		setupMock    func(m *mock_inference.MockClient)
		want         *definition.Result
	}{
		{
			name:         "answer becomes an ai result",
			apiKey:       "sk-test",
			languageCode: "fi",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().DefineWord(gomock.Any(), inference.DefineWordRequest{Word: "koira", LanguageName: "Finnish"}).
					Return(inference.DefineWordResponse{Text: "noun: a dog"}, nil)
			},
			want: &definition.Result{Definition: "noun: a dog", Source: definition.SourceAI},
		},
		{
			name:         "unknown answer",
			apiKey:       "sk-test",
			languageCode: "fi",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().DefineWord(gomock.Any(), gomock.Any()).
					Return(inference.DefineWordResponse{Text: "Unknown."}, nil)
			},
		},
		{
			name:         "too short answer",
			apiKey:       "sk-test",
			languageCode: "fi",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().DefineWord(gomock.Any(), gomock.Any()).
					Return(inference.DefineWordResponse{Text: "ok"}, nil)
			},
		},
		{
			name:         "client error",
			apiKey:       "sk-test",
			languageCode: "fi",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().DefineWord(gomock.Any(), gomock.Any()).
					Return(inference.DefineWordResponse{}, errors.New("response error 500: boom"))
			},
		},
		{
			name:         "language not on the allow-list",
			apiKey:       "sk-test",
			languageCode: "xx",
			setupMock:    func(m *mock_inference.MockClient) {},
		},
		{
			name:         "no credential",
			apiKey:       "",
			languageCode: "fi",
			setupMock:    func(m *mock_inference.MockClient) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)
			tt.setupMock(mockClient)

			got := New(tt.apiKey, mockClient).Generate(context.Background(), "koira", tt.languageCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallback_GenerateTruncates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)
	mockClient.EXPECT().DefineWord(gomock.Any(), gomock.Any()).
		Return(inference.DefineWordResponse{Text: strings.Repeat("ö", 350)}, nil)

	got := New("sk-test", mockClient).Generate(context.Background(), "köö", "fi")
	require.NotNil(t, got)
	assert.Equal(t, definition.MaxLength, utf8.RuneCountInString(got.Definition))
	assert.Nil(t, got.URL)
}

func TestFallback_Enabled(t *testing.T) {
	var nilFallback *Fallback
	assert.False(t, nilFallback.Enabled("fi"))
	assert.False(t, New("sk-test", nil).Enabled("fi"))
	assert.True(t, New("sk-test", mock_inference.NewMockClient(gomock.NewController(t))).Enabled("fi"))
}
