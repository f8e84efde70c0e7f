// Package llm provides functionality for interacting with Large Language
// Models (LLMs), including prompt construction and per-file review generation.
package llm

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts/*.yaml
var promptFiles embed.FS

// PromptKey identifies a tool's prompt pair.
type PromptKey string

// ReviewPullRequestPrompt is the prompt pair used for per-file PR reviews.
const ReviewPullRequestPrompt PromptKey = "review_pull_request"

// promptFile mirrors the on-disk YAML layout: one system and one user template.
type promptFile struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

type promptPair struct {
	system *template.Template
	user   *template.Template
}

// PromptManager loads prompt templates embedded in the binary. Each
// prompts/<key>.yaml file holds a system and a user template rendered with
// text/template.
type PromptManager struct {
	prompts map[PromptKey]promptPair
}

// NewPromptManager parses all embedded prompt files.
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{prompts: make(map[PromptKey]promptPair)}

	files, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		key := PromptKey(strings.TrimSuffix(name, filepath.Ext(name)))

		content, err := promptFiles.ReadFile("prompts/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", name, err)
		}

		var pf promptFile
		if err := yaml.Unmarshal(content, &pf); err != nil {
			return nil, fmt.Errorf("failed to parse prompt file %s: %w", name, err)
		}
		if pf.System == "" || pf.User == "" {
			return nil, fmt.Errorf("prompt file %s must define both system and user templates", name)
		}

		if err := pm.register(key, pf); err != nil {
			return nil, fmt.Errorf("failed to register prompts from file %s: %w", name, err)
		}
	}

	return pm, nil
}

func (pm *PromptManager) register(key PromptKey, pf promptFile) error {
	sysTmpl, err := template.New(string(key) + "_system").Option("missingkey=error").Parse(pf.System)
	if err != nil {
		return fmt.Errorf("could not parse system template: %w", err)
	}
	userTmpl, err := template.New(string(key) + "_user").Option("missingkey=error").Parse(pf.User)
	if err != nil {
		return fmt.Errorf("could not parse user template: %w", err)
	}

	pm.prompts[key] = promptPair{system: sysTmpl, user: userTmpl}
	return nil
}

// RenderSystem renders the system prompt for a key.
func (pm *PromptManager) RenderSystem(key PromptKey, data any) (string, error) {
	pair, ok := pm.prompts[key]
	if !ok {
		return "", fmt.Errorf("no prompts found for key %q", key)
	}
	return render(pair.system, data)
}

// RenderUser renders the user prompt for a key.
func (pm *PromptManager) RenderUser(key PromptKey, data any) (string, error) {
	pair, ok := pm.prompts[key]
	if !ok {
		return "", fmt.Errorf("no prompts found for key %q", key)
	}
	return render(pair.user, data)
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
