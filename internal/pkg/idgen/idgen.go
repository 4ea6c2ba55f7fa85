package idgen

import "github.com/bwmarrin/snowflake"

// Generator hands out timestamp-derived int64 identifiers. Ids are unique
// for the lifetime of the deployment and never reused, which is all the
// record lifecycle requires.
type Generator struct {
	node *snowflake.Node
}

func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node}, nil
}

func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}
