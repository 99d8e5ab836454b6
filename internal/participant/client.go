package participant

//go:generate protoc -I ../../proto --go_out=module=github.com/danielpatrickdp/adaptive-elicitation/go-engine:../.. --go-grpc_out=module=github.com/danielpatrickdp/adaptive-elicitation/go-engine:../.. elicit.proto

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/adaptive-elicitation/go-engine/gen/elicit"
	"github.com/danielpatrickdp/adaptive-elicitation/go-engine/internal/trial"
)

// #region client-struct
// PresentClient wraps the gRPC connection to the external stimulus
// presentation service. One client serves one session: trial indices are
// assigned serially as Respond is called.
type PresentClient struct {
	conn      *grpc.ClientConn
	client    pb.ElicitServiceClient
	sessionID string
	space     trial.SearchSpace
	nextIndex int
}

// #endregion client-struct

// #region constructor
// NewPresentClient connects to the presentation service.
func NewPresentClient(addr, sessionID string, space trial.SearchSpace) (*PresentClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &PresentClient{
		conn:      conn,
		client:    pb.NewElicitServiceClient(conn),
		sessionID: sessionID,
		space:     space,
	}, nil
}

// NewPresentClientWithService creates a PresentClient with an injected
// service implementation. Used for testing without a real connection.
func NewPresentClientWithService(svc pb.ElicitServiceClient, sessionID string, space trial.SearchSpace) *PresentClient {
	return &PresentClient{client: svc, sessionID: sessionID, space: space}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *PresentClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region respond
// Respond presents the stimulus and blocks for the participant's choice.
// A non-response from the service maps to ErrNoResponse.
func (c *PresentClient) Respond(ctx context.Context, stim trial.StimulusParameterSet) (trial.ChoiceResponse, error) {
	dims := make([]*pb.StimulusDimension, 0, len(c.space.Dims))
	for _, d := range c.space.Dims {
		dims = append(dims, &pb.StimulusDimension{
			Name:  string(d.Name),
			Value: stim[d.Name],
		})
	}

	index := c.nextIndex
	resp, err := c.client.Present(ctx, &pb.PresentRequest{
		SessionId:  c.sessionID,
		TrialIndex: int32(index),
		Dimensions: dims,
	})
	if err != nil {
		return trial.ChoiceResponse{}, fmt.Errorf("present rpc: %w", err)
	}
	if !resp.Responded {
		return trial.ChoiceResponse{}, ErrNoResponse
	}

	c.nextIndex++
	return trial.ChoiceResponse{
		Choice:    int(resp.Choice),
		LatencyMs: resp.LatencyMs,
	}, nil
}

// #endregion respond
