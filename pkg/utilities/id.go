package utilities

import (
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// NewUUID returns a random (v4) UUID string. Used as primary key for users,
// expenses and transactions.
func NewUUID() string {
	return uuid.NewString()
}

// NewKSUID generates a new globally unique KSUID string. Used as the opaque
// session token persisted on the user row.
func NewKSUID() string {
	return ksuid.New().String()
}

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

// NewSnowflakeID generates a snowflake ID string using a node ID from
// the environment variable SNOWFLAKE_NODE. If node setup fails it falls
// back to generating a KSUID string to ensure a unique ID is returned.
func NewSnowflakeID() string {
	nodeOnce.Do(func() {
		node, _ = nodeFromEnv(os.Getenv("SNOWFLAKE_NODE"))
	})
	if node == nil {
		return NewKSUID()
	}
	return node.Generate().String()
}

// nodeFromEnv builds the snowflake node for raw, defaulting to node 1 when
// raw is not a number.
func nodeFromEnv(raw string) (*snowflake.Node, error) {
	nodeID := int64(1)
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		nodeID = v
	}
	return snowflake.NewNode(nodeID)
}
