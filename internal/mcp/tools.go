package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ytget/texture-checker/internal/model"
	"github.com/ytget/texture-checker/internal/validate"
)

// Defaults are the requirements used when a tool call omits them
type Defaults struct {
	Requirements model.RequirementConfig
}

// setListing is the JSON shape returned by texture_list_sets
type setListing struct {
	TextureSet model.TextureSetKey       `json:"texture_set"`
	Maps       map[model.MapLabel]string `json:"maps"`
	Labels     []model.MapLabel          `json:"labels"`
}

// registerTools registers all texture MCP tools on the given server.
func registerTools(s *server.MCPServer, checker validate.Checker, defaults Defaults) {
	s.AddTool(
		mcplib.NewTool("texture_validate_folder",
			mcplib.WithDescription("Validate every texture set in a folder against map and resolution requirements. Returns the report as JSON."),
			mcplib.WithString("folder",
				mcplib.Required(),
				mcplib.Description("Absolute path of the folder to scan recursively"),
			),
			mcplib.WithNumber("resolution", mcplib.Description("Required square resolution in pixels")),
			mcplib.WithString("extension", mcplib.Description("Texture file extension, e.g. .tga")),
			mcplib.WithString("maps", mcplib.Description("Comma-separated required map labels, e.g. BaseColor,Normal,RM")),
		),
		handleValidateFolder(checker, defaults),
	)

	s.AddTool(
		mcplib.NewTool("texture_list_sets",
			mcplib.WithDescription("Group the texture files of a folder into texture sets without validating them"),
			mcplib.WithString("folder",
				mcplib.Required(),
				mcplib.Description("Absolute path of the folder to scan recursively"),
			),
			mcplib.WithString("extension", mcplib.Description("Texture file extension, e.g. .tga")),
		),
		handleListSets(checker, defaults),
	)
}

func handleValidateFolder(checker validate.Checker, defaults Defaults) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		folder, err := request.RequireString("folder")
		if err != nil {
			return errorResult("folder parameter is required"), nil
		}

		req, err := requirementsFrom(request.GetArguments(), defaults.Requirements)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		report, err := checker.ValidateFolder(folder, req)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListSets(checker validate.Checker, defaults Defaults) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		folder, err := request.RequireString("folder")
		if err != nil {
			return errorResult("folder parameter is required"), nil
		}

		ext, _ := request.GetArguments()["extension"].(string)
		if strings.TrimSpace(ext) == "" {
			ext = defaults.Requirements.Extension
		}

		sets, err := checker.ListSets(folder, ext)
		if err != nil {
			return errorResult(fmt.Sprintf("listing failed: %v", err)), nil
		}

		listing := make([]setListing, 0, sets.Len())
		for _, set := range sets.All() {
			entry := setListing{
				TextureSet: set.Key,
				Maps:       make(map[model.MapLabel]string, set.Len()),
				Labels:     set.Labels(),
			}
			for _, label := range entry.Labels {
				file, _ := set.Get(label)
				entry.Maps[label] = string(file)
			}
			listing = append(listing, entry)
		}
		return jsonResult(listing)
	}
}

// requirementsFrom overlays tool arguments on base. The resolution must be
// a positive whole number when given.
func requirementsFrom(args map[string]any, base model.RequirementConfig) (model.RequirementConfig, error) {
	req := base
	if value, ok := args["resolution"]; ok {
		resolution, isNumber := value.(float64)
		if !isNumber || resolution != math.Trunc(resolution) {
			return model.RequirementConfig{}, fmt.Errorf("resolution must be a whole number of pixels, got %v", value)
		}
		req.Resolution = int(resolution)
	}
	if ext, ok := args["extension"].(string); ok && strings.TrimSpace(ext) != "" {
		req.Extension = ext
	}
	if maps, ok := args["maps"].(string); ok {
		req.RequiredMaps = parseLabels(maps)
	}
	req = model.NewRequirementConfig(req.Resolution, req.Extension, req.RequiredMaps)
	if err := req.Validate(); err != nil {
		return model.RequirementConfig{}, err
	}
	return req, nil
}

func parseLabels(csv string) []model.MapLabel {
	var labels []model.MapLabel
	for _, part := range strings.Split(csv, ",") {
		labels = append(labels, model.MapLabel(part))
	}
	return model.UniqueLabels(labels)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
