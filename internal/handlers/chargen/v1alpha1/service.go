package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-chargen/internal/pkg/grpcjson"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "chargen.api.v1alpha1.CharacterCreationService"

// Full method names
const (
	ListRacesFullMethodName            = "/" + ServiceName + "/ListRaces"
	ListOccupationsFullMethodName      = "/" + ServiceName + "/ListOccupations"
	CreateSessionFullMethodName        = "/" + ServiceName + "/CreateSession"
	GetSessionFullMethodName           = "/" + ServiceName + "/GetSession"
	RollAbilityScoresFullMethodName    = "/" + ServiceName + "/RollAbilityScores"
	AssignAbilityScoreFullMethodName   = "/" + ServiceName + "/AssignAbilityScore"
	UnassignAbilityScoreFullMethodName = "/" + ServiceName + "/UnassignAbilityScore"
	ApplyRacialBonusFullMethodName     = "/" + ServiceName + "/ApplyRacialBonus"
	FinalizeCharacterFullMethodName    = "/" + ServiceName + "/FinalizeCharacter"
	GetCharacterFullMethodName         = "/" + ServiceName + "/GetCharacter"
	ListCharactersFullMethodName       = "/" + ServiceName + "/ListCharacters"
	DeleteCharacterFullMethodName      = "/" + ServiceName + "/DeleteCharacter"
	ExportCharacterFullMethodName      = "/" + ServiceName + "/ExportCharacter"
)

// CharacterCreationServiceServer is the server API. Messages travel as JSON
// through the grpcjson codec.
type CharacterCreationServiceServer interface {
	ListRaces(context.Context, *ListRacesRequest) (*ListRacesResponse, error)
	ListOccupations(context.Context, *ListOccupationsRequest) (*ListOccupationsResponse, error)
	CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *SessionRequest) (*SessionResponse, error)
	RollAbilityScores(context.Context, *SessionRequest) (*SessionResponse, error)
	AssignAbilityScore(context.Context, *AssignAbilityScoreRequest) (*SessionResponse, error)
	UnassignAbilityScore(context.Context, *UnassignAbilityScoreRequest) (*SessionResponse, error)
	ApplyRacialBonus(context.Context, *ApplyRacialBonusRequest) (*SessionResponse, error)
	FinalizeCharacter(context.Context, *FinalizeCharacterRequest) (*FinalizeCharacterResponse, error)
	GetCharacter(context.Context, *CharacterRequest) (*CharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *CharacterRequest) (*DeleteCharacterResponse, error)
	ExportCharacter(context.Context, *ExportCharacterRequest) (*ExportCharacterResponse, error)
}

// UnimplementedCharacterCreationServiceServer answers every method with
// codes.Unimplemented
type UnimplementedCharacterCreationServiceServer struct{}

// ListRaces is not implemented
func (UnimplementedCharacterCreationServiceServer) ListRaces(context.Context, *ListRacesRequest) (*ListRacesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRaces not implemented")
}

// ListOccupations is not implemented
func (UnimplementedCharacterCreationServiceServer) ListOccupations(context.Context, *ListOccupationsRequest) (*ListOccupationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOccupations not implemented")
}

// CreateSession is not implemented
func (UnimplementedCharacterCreationServiceServer) CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSession not implemented")
}

// GetSession is not implemented
func (UnimplementedCharacterCreationServiceServer) GetSession(context.Context, *SessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}

// RollAbilityScores is not implemented
func (UnimplementedCharacterCreationServiceServer) RollAbilityScores(context.Context, *SessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollAbilityScores not implemented")
}

// AssignAbilityScore is not implemented
func (UnimplementedCharacterCreationServiceServer) AssignAbilityScore(context.Context, *AssignAbilityScoreRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AssignAbilityScore not implemented")
}

// UnassignAbilityScore is not implemented
func (UnimplementedCharacterCreationServiceServer) UnassignAbilityScore(context.Context, *UnassignAbilityScoreRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UnassignAbilityScore not implemented")
}

// ApplyRacialBonus is not implemented
func (UnimplementedCharacterCreationServiceServer) ApplyRacialBonus(context.Context, *ApplyRacialBonusRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyRacialBonus not implemented")
}

// FinalizeCharacter is not implemented
func (UnimplementedCharacterCreationServiceServer) FinalizeCharacter(context.Context, *FinalizeCharacterRequest) (*FinalizeCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinalizeCharacter not implemented")
}

// GetCharacter is not implemented
func (UnimplementedCharacterCreationServiceServer) GetCharacter(context.Context, *CharacterRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

// ListCharacters is not implemented
func (UnimplementedCharacterCreationServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCharacters not implemented")
}

// DeleteCharacter is not implemented
func (UnimplementedCharacterCreationServiceServer) DeleteCharacter(context.Context, *CharacterRequest) (*DeleteCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCharacter not implemented")
}

// ExportCharacter is not implemented
func (UnimplementedCharacterCreationServiceServer) ExportCharacter(context.Context, *ExportCharacterRequest) (*ExportCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportCharacter not implemented")
}

// RegisterCharacterCreationServiceServer registers srv with s
func RegisterCharacterCreationServiceServer(s grpc.ServiceRegistrar, srv CharacterCreationServiceServer) {
	s.RegisterService(&CharacterCreationServiceDesc, srv)
}

// CharacterCreationServiceDesc describes the service for grpc.Server
var CharacterCreationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CharacterCreationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListRaces", Handler: _ListRacesHandler},
		{MethodName: "ListOccupations", Handler: _ListOccupationsHandler},
		{MethodName: "CreateSession", Handler: _CreateSessionHandler},
		{MethodName: "GetSession", Handler: _GetSessionHandler},
		{MethodName: "RollAbilityScores", Handler: _RollAbilityScoresHandler},
		{MethodName: "AssignAbilityScore", Handler: _AssignAbilityScoreHandler},
		{MethodName: "UnassignAbilityScore", Handler: _UnassignAbilityScoreHandler},
		{MethodName: "ApplyRacialBonus", Handler: _ApplyRacialBonusHandler},
		{MethodName: "FinalizeCharacter", Handler: _FinalizeCharacterHandler},
		{MethodName: "GetCharacter", Handler: _GetCharacterHandler},
		{MethodName: "ListCharacters", Handler: _ListCharactersHandler},
		{MethodName: "DeleteCharacter", Handler: _DeleteCharacterHandler},
		{MethodName: "ExportCharacter", Handler: _ExportCharacterHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chargen/api/v1alpha1/character_creation.json",
}

func _ListRacesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRacesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).ListRaces(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListRacesFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).ListRaces(ctx, req.(*ListRacesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ListOccupationsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOccupationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).ListOccupations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListOccupationsFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).ListOccupations(ctx, req.(*ListOccupationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CreateSessionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CreateSessionFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).CreateSession(ctx, req.(*CreateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GetSessionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).GetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetSessionFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).GetSession(ctx, req.(*SessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RollAbilityScoresHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).RollAbilityScores(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RollAbilityScoresFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).RollAbilityScores(ctx, req.(*SessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssignAbilityScoreHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignAbilityScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).AssignAbilityScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AssignAbilityScoreFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).AssignAbilityScore(ctx, req.(*AssignAbilityScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnassignAbilityScoreHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnassignAbilityScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).UnassignAbilityScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnassignAbilityScoreFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).UnassignAbilityScore(ctx, req.(*UnassignAbilityScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplyRacialBonusHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyRacialBonusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).ApplyRacialBonus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplyRacialBonusFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).ApplyRacialBonus(ctx, req.(*ApplyRacialBonusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FinalizeCharacterHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinalizeCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).FinalizeCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinalizeCharacterFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).FinalizeCharacter(ctx, req.(*FinalizeCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GetCharacterHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetCharacterFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).GetCharacter(ctx, req.(*CharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ListCharactersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListCharactersFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeleteCharacterHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).DeleteCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeleteCharacterFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).DeleteCharacter(ctx, req.(*CharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportCharacterHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterCreationServiceServer).ExportCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportCharacterFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CharacterCreationServiceServer).ExportCharacter(ctx, req.(*ExportCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CharacterCreationServiceClient is the client API
type CharacterCreationServiceClient interface {
	ListRaces(ctx context.Context, in *ListRacesRequest, opts ...grpc.CallOption) (*ListRacesResponse, error)
	ListOccupations(ctx context.Context, in *ListOccupationsRequest, opts ...grpc.CallOption) (*ListOccupationsResponse, error)
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	GetSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	RollAbilityScores(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	AssignAbilityScore(ctx context.Context, in *AssignAbilityScoreRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	UnassignAbilityScore(ctx context.Context, in *UnassignAbilityScoreRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	ApplyRacialBonus(ctx context.Context, in *ApplyRacialBonusRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	FinalizeCharacter(ctx context.Context, in *FinalizeCharacterRequest, opts ...grpc.CallOption) (*FinalizeCharacterResponse, error)
	GetCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	ExportCharacter(ctx context.Context, in *ExportCharacterRequest, opts ...grpc.CallOption) (*ExportCharacterResponse, error)
}

type characterCreationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterCreationServiceClient creates a client that always selects the
// JSON codec
func NewCharacterCreationServiceClient(cc grpc.ClientConnInterface) CharacterCreationServiceClient {
	return &characterCreationServiceClient{cc: cc}
}

func (c *characterCreationServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpcjson.CallOption()}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *characterCreationServiceClient) ListRaces(ctx context.Context, in *ListRacesRequest, opts ...grpc.CallOption) (*ListRacesResponse, error) {
	out := new(ListRacesResponse)
	if err := c.invoke(ctx, ListRacesFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) ListOccupations(ctx context.Context, in *ListOccupationsRequest, opts ...grpc.CallOption) (*ListOccupationsResponse, error) {
	out := new(ListOccupationsResponse)
	if err := c.invoke(ctx, ListOccupationsFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.invoke(ctx, CreateSessionFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) GetSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.invoke(ctx, GetSessionFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) RollAbilityScores(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.invoke(ctx, RollAbilityScoresFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) AssignAbilityScore(ctx context.Context, in *AssignAbilityScoreRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.invoke(ctx, AssignAbilityScoreFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) UnassignAbilityScore(ctx context.Context, in *UnassignAbilityScoreRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.invoke(ctx, UnassignAbilityScoreFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) ApplyRacialBonus(ctx context.Context, in *ApplyRacialBonusRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.invoke(ctx, ApplyRacialBonusFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) FinalizeCharacter(ctx context.Context, in *FinalizeCharacterRequest, opts ...grpc.CallOption) (*FinalizeCharacterResponse, error) {
	out := new(FinalizeCharacterResponse)
	if err := c.invoke(ctx, FinalizeCharacterFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) GetCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	out := new(CharacterResponse)
	if err := c.invoke(ctx, GetCharacterFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	out := new(ListCharactersResponse)
	if err := c.invoke(ctx, ListCharactersFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) DeleteCharacter(ctx context.Context, in *CharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	out := new(DeleteCharacterResponse)
	if err := c.invoke(ctx, DeleteCharacterFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterCreationServiceClient) ExportCharacter(ctx context.Context, in *ExportCharacterRequest, opts ...grpc.CallOption) (*ExportCharacterResponse, error) {
	out := new(ExportCharacterResponse)
	if err := c.invoke(ctx, ExportCharacterFullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
