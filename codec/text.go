package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
)

// TileNode is a single <tile gid="..."/> element of the verbose XML tile
// data encoding. A nil GID denotes an empty cell.
type TileNode struct {
	GID *int32 `xml:"gid,attr,omitempty"`
}

// ParsePlainText parses whitespace separated tile IDs in row-major order.
// Cells without a token stay empty.
func ParsePlainText(text string, extent tile.Extent) (*layer.TileMatrix, error) {
	return parseTokens(strings.Fields(text), extent)
}

// ParseCSV parses comma separated tile IDs in row-major order. Lines may
// end with a trailing comma, as written by Tiled.
func ParseCSV(text string, extent tile.Extent) (*layer.TileMatrix, error) {
	var tokens []string
	for line := range strings.Lines(text) {
		for token := range strings.SplitSeq(line, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return parseTokens(tokens, extent)
}

func parseTokens(tokens []string, extent tile.Extent) (*layer.TileMatrix, error) {
	cells, err := decodedCells(extent)
	if err != nil {
		return nil, err
	}

	if len(tokens) > cells {
		return nil, fmt.Errorf("%w: %d tiles for %v", ErrBadTileLayerData, len(tokens), extent)
	}

	m, err := layer.New(extent)
	if err != nil {
		return nil, err
	}

	for i, token := range tokens {
		id, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %w", ErrBadTileLayerData, i, err)
		}
		m.SetTile(tile.PositionFromIndex(i, extent.Columns), tile.ID(id))
	}

	return m, nil
}

// ParseTileNodes places the nodes in row-major order. Nodes without a GID
// are empty cells.
func ParseTileNodes(nodes []TileNode, extent tile.Extent) (*layer.TileMatrix, error) {
	cells, err := decodedCells(extent)
	if err != nil {
		return nil, err
	}

	if len(nodes) > cells {
		return nil, fmt.Errorf("%w: %d tile nodes for %v", ErrBadTileLayerData, len(nodes), extent)
	}

	m, err := layer.New(extent)
	if err != nil {
		return nil, err
	}

	for i, node := range nodes {
		if node.GID != nil {
			m.SetTile(tile.PositionFromIndex(i, extent.Columns), tile.ID(*node.GID))
		}
	}

	return m, nil
}

// FormatPlainText writes the layer as rows of space separated tile IDs.
func FormatPlainText(l layer.Layer) string {
	return formatTokens(l, " ", "\n")
}

// FormatCSV writes the layer as comma separated rows, each line but the
// last ending with a comma.
func FormatCSV(l layer.Layer) string {
	return formatTokens(l, ",", ",\n")
}

func formatTokens(l layer.Layer, sep, rowSep string) string {
	var sb strings.Builder
	for pos, id := range tile.IterTiles(l) {
		if pos.Column > 0 {
			sb.WriteString(sep)
		} else if pos.Row > 0 {
			sb.WriteString(rowSep)
		}
		sb.WriteString(strconv.FormatInt(int64(id), 10))
	}
	return sb.String()
}

// FormatTileNodes returns one node per cell; empty cells have no GID.
func FormatTileNodes(l layer.Layer) []TileNode {
	nodes := make([]TileNode, 0, l.Extent().Cells())
	for _, id := range tile.IterTiles(l) {
		if id == tile.Empty {
			nodes = append(nodes, TileNode{})
			continue
		}
		gid := int32(id)
		nodes = append(nodes, TileNode{GID: &gid})
	}
	return nodes
}
