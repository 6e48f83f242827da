package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "spellforge.combat.v1alpha1.CombatService"

// CombatServiceServer is the server API for the combat service. Messages are
// structpb.Struct documents so clients need no generated code.
type CombatServiceServer interface {
	StartEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CastSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UseAbility(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UseConsumable(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Defend(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Flee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ProcessEnemyTurn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AbandonEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CraftSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CraftConsumable(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(CombatServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CombatServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CombatServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CombatServiceDesc describes the combat service for grpc.Server registration
var CombatServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("StartEncounter", CombatServiceServer.StartEncounter),
		unaryMethod("GetEncounter", CombatServiceServer.GetEncounter),
		unaryMethod("CastSpell", CombatServiceServer.CastSpell),
		unaryMethod("UseAbility", CombatServiceServer.UseAbility),
		unaryMethod("UseConsumable", CombatServiceServer.UseConsumable),
		unaryMethod("Defend", CombatServiceServer.Defend),
		unaryMethod("Flee", CombatServiceServer.Flee),
		unaryMethod("ProcessEnemyTurn", CombatServiceServer.ProcessEnemyTurn),
		unaryMethod("AbandonEncounter", CombatServiceServer.AbandonEncounter),
		unaryMethod("CraftSpell", CombatServiceServer.CraftSpell),
		unaryMethod("CraftConsumable", CombatServiceServer.CraftConsumable),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterCombatServiceServer registers the combat service with a gRPC server
func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	s.RegisterService(&CombatServiceDesc, srv)
}

// Client calls combat service methods by name
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a combat service client over an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes a unary combat method such as "CastSpell"
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
