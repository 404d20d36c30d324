// Package grpcapi implements the stackcalc.v1.Calculator gRPC service. The
// service uses protobuf well-known types for its messages, so it needs no
// generated code: requests are StringValue expressions and responses are
// Int64Value results, StringValue postfix streams or Struct history records.
package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/lemonberrylabs/stackcalc/pkg/calc"
	"github.com/lemonberrylabs/stackcalc/pkg/store"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "stackcalc.v1.Calculator"

// ErrorDomain is the domain reported in ErrorInfo details.
const ErrorDomain = "stackcalc"

// EvaluationIDHeader is the response header carrying the ID under which an
// Evaluate call was recorded.
const EvaluationIDHeader = "x-evaluation-id"

// CalculatorServer is the server API for the Calculator service.
type CalculatorServer interface {
	Evaluate(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)
	Postfix(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	GetEvaluation(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// Server implements the Calculator gRPC service.
type Server struct {
	calc  *calc.Calculator
	store *store.Store
	grpc  *grpc.Server
}

// New creates a new gRPC server evaluating with c and recording into s.
func New(c *calc.Calculator, s *store.Store) *Server {
	srv := &Server{
		calc:  c,
		store: s,
	}

	gs := grpc.NewServer()
	RegisterCalculatorServer(gs, srv)
	srv.grpc = gs

	return srv
}

// Serve starts listening on the given address and serves gRPC requests.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	return s.grpc.Serve(lis)
}

// GracefulStop gracefully stops the gRPC server.
func (s *Server) GracefulStop() {
	s.grpc.GracefulStop()
}

func (s *Server) Evaluate(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	expr := req.GetValue()
	if expr == "" {
		return nil, status.Error(codes.InvalidArgument, "expression is required")
	}

	res, err := s.calc.EvalString(expr)
	ev := s.store.Record(expr, res, err)
	_ = grpc.SetHeader(ctx, metadata.Pairs(EvaluationIDHeader, ev.ID))
	if err != nil {
		return nil, calcStatus(err)
	}
	return wrapperspb.Int64(res.Value), nil
}

func (s *Server) Postfix(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	expr := req.GetValue()
	if expr == "" {
		return nil, status.Error(codes.InvalidArgument, "expression is required")
	}

	p, err := s.calc.PostfixString(expr)
	if err != nil {
		return nil, calcStatus(err)
	}
	return wrapperspb.String(p.String()), nil
}

func (s *Server) GetEvaluation(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	ev, err := s.store.Get(req.GetValue())
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return evaluationToProto(ev)
}

// --- Helpers ---

// calcStatus converts a calculator error to a gRPC status carrying the
// error kind as ErrorInfo.
func calcStatus(err error) error {
	var ce *calc.Error
	if !errors.As(err, &ce) {
		return status.Error(codes.Internal, err.Error())
	}

	code := codes.InvalidArgument
	switch ce.Kind {
	case calc.KindOverflow, calc.KindDomain:
		code = codes.OutOfRange
	}

	st := status.New(code, ce.Error())
	info := &errdetails.ErrorInfo{
		Reason:   ce.Kind,
		Domain:   ErrorDomain,
		Metadata: map[string]string{},
	}
	if ce.Pos > 0 {
		info.Metadata["position"] = fmt.Sprintf("%d", ce.Pos)
	}
	detailed, derr := st.WithDetails(info)
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// KindFromError returns the calculator error kind carried by a status error
// from this service, or "" if there is none.
func KindFromError(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}

func evaluationToProto(ev *store.Evaluation) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"id":         ev.ID,
		"expression": ev.Expression,
		"state":      string(ev.State),
		"createTime": ev.CreateTime.Format(time.RFC3339),
	}
	if ev.Postfix != "" {
		m["postfix"] = ev.Postfix
	}
	if ev.Result != nil {
		// Struct numbers are doubles; the exact value travels as a string.
		m["result"] = fmt.Sprintf("%d", *ev.Result)
	}
	if ev.Error != nil {
		m["error"] = map[string]interface{}{
			"kind":    ev.Error.Kind,
			"message": ev.Error.Message,
		}
	}

	pb, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding evaluation: %v", err)
	}
	return pb, nil
}
