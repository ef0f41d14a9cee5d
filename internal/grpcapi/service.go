// Package grpcapi exposes the classification service over gRPC using
// protobuf well-known types, so no generated stubs are required.
package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vietddude/bfhl/internal/core/domain"
	"github.com/vietddude/bfhl/internal/core/generator"
	"github.com/vietddude/bfhl/internal/core/service"
)

const (
	ServiceName    = "bfhl.v1.Classifier"
	ClassifyMethod = "/" + ServiceName + "/Classify"
	GenerateMethod = "/" + ServiceName + "/Generate"
)

// ClassifierServer is the server API of bfhl.v1.Classifier.
type ClassifierServer interface {
	Classify(context.Context, *structpb.ListValue) (*structpb.Struct, error)
	Generate(context.Context, *structpb.Struct) (*structpb.ListValue, error)
}

var classifierServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClassifierServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Classify", Handler: classifyHandler},
		{MethodName: "Generate", Handler: generateHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bfhl/v1/classifier.proto",
}

func classifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClassifierServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClassifyMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClassifierServer).Classify(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

func generateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClassifierServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClassifierServer).Generate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// classifierService implements ClassifierServer on top of service.Service.
type classifierService struct {
	svc *service.Service
}

func (c *classifierService) Classify(ctx context.Context, in *structpb.ListValue) (*structpb.Struct, error) {
	tokens, err := tokensFromList(in)
	if err != nil {
		return nil, err
	}

	out, err := responseToStruct(c.svc.Classify(tokens))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

func (c *classifierService) Generate(ctx context.Context, in *structpb.Struct) (*structpb.ListValue, error) {
	params, err := paramsFromStruct(in)
	if err != nil {
		return nil, err
	}

	data, _, err := c.svc.Generate(params)
	if err != nil {
		if errors.Is(err, generator.ErrUnknownKind) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to generate data: %v", err)
	}
	return stringList(data), nil
}

// tokensFromList keeps strings verbatim and renders numbers in their
// shortest decimal form. Every other value kind is reported as a violation.
//
// This deliberately differs from the HTTP decoder, which keeps the literal
// JSON text of a number: a structpb number is already a float64 with no
// source text, so 1e2 arrives as 100 and is classified as an even number,
// while over HTTP the token "1e2" is a special character.
func tokensFromList(in *structpb.ListValue) ([]string, error) {
	values := in.GetValues()
	tokens := make([]string, 0, len(values))
	var violations []*errdetails.BadRequest_FieldViolation

	for i, v := range values {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			tokens = append(tokens, kind.StringValue)
		case *structpb.Value_NumberValue:
			tokens = append(tokens, strconv.FormatFloat(kind.NumberValue, 'f', -1, 64))
		default:
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       fmt.Sprintf("data[%d]", i),
				Description: "element must be a string or a number",
			})
		}
	}

	if len(violations) > 0 {
		return nil, invalidArgument("'data' elements must be strings or numbers", violations)
	}
	return tokens, nil
}

func paramsFromStruct(in *structpb.Struct) (generator.Params, error) {
	p := generator.DefaultParams()
	fields := in.GetFields()
	var violations []*errdetails.BadRequest_FieldViolation

	if v, ok := fields["type"]; ok {
		if s, isString := v.GetKind().(*structpb.Value_StringValue); isString {
			p.Kind = generator.Kind(s.StringValue)
		} else {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       "type",
				Description: "must be a string",
			})
		}
	}

	for name, dst := range map[string]*int{
		"count":      &p.Count,
		"min_length": &p.MinLength,
		"max_length": &p.MaxLength,
	} {
		v, ok := fields[name]
		if !ok {
			continue
		}
		n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
		if !isNumber || n.NumberValue != float64(int(n.NumberValue)) {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       name,
				Description: "must be an integer",
			})
			continue
		}
		*dst = int(n.NumberValue)
	}

	if len(violations) > 0 {
		return p, invalidArgument("invalid generate parameters", violations)
	}
	return p, nil
}

func invalidArgument(msg string, violations []*errdetails.BadRequest_FieldViolation) error {
	st := status.New(codes.InvalidArgument, msg)
	detailed, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func responseToStruct(resp domain.Response) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"is_success":         resp.IsSuccess,
		"user_id":            resp.UserID,
		"email":              resp.Email,
		"roll_number":        resp.RollNumber,
		"odd_numbers":        anySlice(resp.OddNumbers),
		"even_numbers":       anySlice(resp.EvenNumbers),
		"alphabets":          anySlice(resp.Alphabets),
		"special_characters": anySlice(resp.SpecialCharacters),
		"sum":                resp.Sum,
		"concat_string":      resp.ConcatString,
	})
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func stringList(ss []string) *structpb.ListValue {
	values := make([]*structpb.Value, len(ss))
	for i, s := range ss {
		values[i] = structpb.NewStringValue(s)
	}
	return &structpb.ListValue{Values: values}
}
