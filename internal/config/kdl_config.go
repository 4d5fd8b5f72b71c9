package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// loadKDL loads DefaultFileName from dir, the same
// "stat, read, parse, no-file-means-nil" shape as the teacher's
// LoadKDL. Returns (nil, nil) when the file does not exist.
func loadKDL(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DefaultFileName, err)
	}

	return parseKDL(content)
}

// parseKDL walks the document the way the teacher's parseKDL does:
// one top-level switch on node name, nested switches for child blocks.
// This config's shape is small enough for two flat blocks:
//
//	scorm2004 {
//	    validate-xsd true
//	}
//	parser {
//	    strict-mode false
//	}
func parseKDL(content []byte) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DefaultFileName, err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "scorm2004":
			for _, cn := range n.Children {
				if nodeName(cn) == "validate-xsd" {
					if b, ok := firstBoolArg(cn); ok {
						cfg.ValidateXMLAgainstSchema = b
					}
				}
			}
		case "parser":
			for _, cn := range n.Children {
				if nodeName(cn) == "strict-mode" {
					if b, ok := firstBoolArg(cn); ok {
						cfg.StrictMode = b
					}
				}
			}
		}
	}

	return &cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}
