// Package api holds the protobuf messages and gRPC bindings of the metadata
// session keys service.
package api

//go:generate protoc --proto_path=.. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative ../api/sessionkeys.proto
