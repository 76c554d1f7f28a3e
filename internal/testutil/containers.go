//go:build integration

package testutil

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SkipIfNoDocker Docker 不可用时跳过测试
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// StartContainer 启动容器并在测试结束时清理
func StartContainer(t *testing.T, req testcontainers.ContainerRequest) testcontainers.Container {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start %s: %v", req.Image, err)
	}
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})
	return ctr
}

// NewMongoDatabase 启动 MongoDB 容器并返回一个空数据库
func NewMongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	ctr := StartContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	addr, err := ctr.PortEndpoint(ctx, "27017/tcp", "")
	if err != nil {
		t.Fatalf("mongo endpoint: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://"+addr))
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping mongo: %v", err)
	}
	return client.Database("project2_nosql_test")
}

// MySQLAddr 启动 MySQL 容器，返回 host:port；root 密码为 password，库名 project2
func MySQLAddr(t *testing.T) string {
	t.Helper()

	ctr := StartContainer(t, testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "password",
			"MYSQL_DATABASE":      "project2",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(120 * time.Second),
	})

	addr, err := ctr.PortEndpoint(context.Background(), "3306/tcp", "")
	if err != nil {
		t.Fatalf("mysql endpoint: %v", err)
	}
	return addr
}
