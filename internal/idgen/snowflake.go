package idgen

import (
	"log"
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init 初始化默认节点，SNOWFLAKE_NODE_ID 支持多实例部署
func Init() {
	nodeID := int64(1)
	if s := os.Getenv("SNOWFLAKE_NODE_ID"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 || n > 1023 {
			log.Fatalf("[IDGen] Invalid SNOWFLAKE_NODE_ID: %v", s)
		}
		nodeID = n
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		log.Fatalf("[IDGen] init node failed: %v", err)
	}
	node = n
	log.Printf("[IDGen] Snowflake node initialized: nodeID=%d", nodeID)
}

// New 生成平台支付流水号
func New() uint64 {
	if node == nil {
		Init()
	}
	return uint64(node.Generate().Int64())
}
