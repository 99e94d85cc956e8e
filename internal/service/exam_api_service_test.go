package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizboard_backend/internal/config"
)

func TestFetchQuestions(t *testing.T) {
	var gotPath, gotExamID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotExamID = r.URL.Query().Get("exam_id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 2,
			"data": [
				{"ID": 7, "question": "Q1", "options": ["a", "b"], "correctIndex": 1},
				{"ID": 8, "question": "Q2", "options": ["x", "y"], "answer": "x"}
			]
		}`))
	}))
	defer server.Close()

	svc := NewExamAPIService(config.ExamAPIConfig{BaseURL: server.URL, TimeoutSeconds: 5}, nil)

	questions, err := svc.FetchQuestions(context.Background(), "exam 42")
	if err != nil {
		t.Fatalf("FetchQuestions() error: %v", err)
	}
	if gotPath != "/exam_view_questions_api" {
		t.Errorf("request path %q", gotPath)
	}
	if gotExamID != "exam 42" {
		t.Errorf("exam_id decoded to %q, want escaped round trip", gotExamID)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Question != "Q1" || len(questions[0].Options) != 2 {
		t.Errorf("first question decoded wrong: %+v", questions[0])
	}
	if idx, ok := questions[0].CorrectIndex.(float64); !ok || idx != 1 {
		t.Errorf("correctIndex decoded as %v", questions[0].CorrectIndex)
	}
}

func TestFetchQuestionsEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0, "data": []}`))
	}))
	defer server.Close()

	svc := NewExamAPIService(config.ExamAPIConfig{BaseURL: server.URL}, nil)

	questions, err := svc.FetchQuestions(context.Background(), "empty")
	if err != nil {
		t.Fatalf("empty payload must not be an error, got %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0", len(questions))
	}
}

func TestFetchQuestionsUpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data": [`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := NewExamAPIService(config.ExamAPIConfig{BaseURL: server.URL}, nil)
			if _, err := svc.FetchQuestions(context.Background(), "x"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFetchQuestionsUnreachable(t *testing.T) {
	svc := NewExamAPIService(config.ExamAPIConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1}, nil)
	if _, err := svc.FetchQuestions(context.Background(), "x"); err == nil {
		t.Error("expected transport error, got nil")
	}
}
