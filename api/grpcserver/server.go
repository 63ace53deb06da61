package grpcserver

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "kestrel/api/pb"
	"kestrel/service"
)

type Server struct {
	pb.UnimplementedKestrelServer
	svc *service.IndexService
}

func NewServer(svc *service.IndexService) *Server {
	return &Server{svc: svc}
}

func (s *Server) Put(ctx context.Context, req *pb.PutRequest) (*pb.PutResponse, error) {
	if len(req.Key) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty key")
	}

	seq, err := s.svc.Put(req.Key, req.Value, req.TtlMs)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "put: %v", err)
	}
	log.Printf("[gRPC] Put key=%q ttl_ms=%d seq=%d", req.Key, req.TtlMs, seq)

	return &pb.PutResponse{Seq: seq}, nil
}

func (s *Server) Get(ctx context.Context, req *pb.GetRequest) (*pb.GetResponse, error) {
	if len(req.Key) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty key")
	}

	v, ok := s.svc.Get(req.Key)
	if !ok {
		return &pb.GetResponse{Found: false}, nil
	}
	return &pb.GetResponse{Found: true, Entry: toEntry(v)}, nil
}

func (s *Server) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {
	if len(req.Key) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty key")
	}

	seq, existed, err := s.svc.Delete(req.Key)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete: %v", err)
	}
	log.Printf("[gRPC] Delete key=%q existed=%v seq=%d", req.Key, existed, seq)

	return &pb.DeleteResponse{Seq: seq, Existed: existed}, nil
}

func (s *Server) Scan(ctx context.Context, req *pb.ScanRequest) (*pb.ScanResponse, error) {
	views := s.svc.Scan(req.Start, req.End, req.Pattern, int(req.Limit))

	resp := &pb.ScanResponse{}
	for _, v := range views {
		resp.Entries = append(resp.Entries, toEntry(v))
	}
	return resp, nil
}

// --- converters ---

func toEntry(v service.EntryView) *pb.Entry {
	return &pb.Entry{
		Key:      v.Key,
		Value:    v.Value,
		Seq:      v.Seq,
		ExpireAt: v.ExpireAt,
	}
}
