package participant

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/adaptive-elicitation/go-engine/gen/elicit"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// mockElicitService implements pb.ElicitServiceClient without a connection.
type mockElicitService struct {
	resp    *pb.PresentResponse
	err     error
	lastReq *pb.PresentRequest
	calls   int
}

func (m *mockElicitService) Present(_ context.Context, req *pb.PresentRequest, _ ...grpc.CallOption) (*pb.PresentResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func clientSpace() trial.SearchSpace {
	return trial.SearchSpace{Dims: []trial.DimensionBound{
		{Name: trial.DimAmount1, Min: 1, Max: 10},
		{Name: trial.DimCost2, Min: 0, Max: 60},
	}}
}

func TestPresentClientRespond(t *testing.T) {
	mock := &mockElicitService{resp: &pb.PresentResponse{Responded: true, Choice: 1, LatencyMs: 820}}
	client := NewPresentClientWithService(mock, "sess-1", clientSpace())

	stim := trial.StimulusParameterSet{trial.DimAmount1: 4, trial.DimCost2: 30}
	resp, err := client.Respond(context.Background(), stim)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if resp.Choice != 1 || resp.LatencyMs != 820 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	req := mock.lastReq
	if req.SessionId != "sess-1" || req.TrialIndex != 0 {
		t.Fatalf("unexpected request header: %+v", req)
	}
	if len(req.Dimensions) != 2 {
		t.Fatalf("expected 2 dimensions, got %d", len(req.Dimensions))
	}
	if req.Dimensions[0].Name != "amount_1" || req.Dimensions[0].Value != 4 {
		t.Fatalf("dimension order lost: %+v", req.Dimensions)
	}

	// Index advances per successful presentation.
	if _, err := client.Respond(context.Background(), stim); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if mock.lastReq.TrialIndex != 1 {
		t.Fatalf("expected trial index 1, got %d", mock.lastReq.TrialIndex)
	}
}

func TestPresentClientNonResponse(t *testing.T) {
	mock := &mockElicitService{resp: &pb.PresentResponse{Responded: false}}
	client := NewPresentClientWithService(mock, "sess-1", clientSpace())

	stim := trial.StimulusParameterSet{trial.DimAmount1: 4, trial.DimCost2: 30}
	if _, err := client.Respond(context.Background(), stim); !errors.Is(err, ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}

	// A retry re-presents under the same trial index.
	if _, err := client.Respond(context.Background(), stim); !errors.Is(err, ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
	if mock.lastReq.TrialIndex != 0 {
		t.Fatalf("non-response must not advance the index, got %d", mock.lastReq.TrialIndex)
	}
}

func TestPresentClientRPCError(t *testing.T) {
	mock := &mockElicitService{err: errors.New("transport down")}
	client := NewPresentClientWithService(mock, "sess-1", clientSpace())

	_, err := client.Respond(context.Background(), trial.StimulusParameterSet{trial.DimAmount1: 4, trial.DimCost2: 30})
	if err == nil || errors.Is(err, ErrNoResponse) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestPresentClientCloseWithoutConnection(t *testing.T) {
	client := NewPresentClientWithService(&mockElicitService{}, "sess-1", clientSpace())
	if err := client.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
