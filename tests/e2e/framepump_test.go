// Package e2e contains end-to-end tests for the framepump CLI.
// This package has no CGO dependencies so it can run with pre-built binaries.
package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/user/framepump/pkg/i420"
)

var (
	buildOnce sync.Once
	buildErr  error
	buildOut  []byte
)

// getBinaryName returns the test binary name with platform-specific extension
func getBinaryName() string {
	if runtime.GOOS == "windows" {
		return "framepump-test.exe"
	}
	return "framepump-test"
}

// getBinaryPath returns the path to execute the test binary
// If FRAMEPUMP_BINARY env var is set, use that instead (for CI with pre-built binaries)
func getBinaryPath(t *testing.T) string {
	if path := os.Getenv("FRAMEPUMP_BINARY"); path != "" {
		return path
	}
	return filepath.Join(getProjectRoot(t), getBinaryName())
}

// requireBinary skips unless E2E tests are enabled and builds the CLI once.
func requireBinary(t *testing.T) string {
	t.Helper()
	if os.Getenv("FRAMEPUMP_E2E") != "1" {
		t.Skip("Skipping E2E test (set FRAMEPUMP_E2E=1 to run)")
	}

	if os.Getenv("FRAMEPUMP_BINARY") == "" {
		root := getProjectRoot(t)
		buildOnce.Do(func() {
			buildCmd := exec.Command("go", "build", "-o", getBinaryName(), "./cmd/framepump")
			buildCmd.Dir = root
			buildOut, buildErr = buildCmd.CombinedOutput()
		})
		if buildErr != nil {
			t.Fatalf("Failed to build CLI: %v\n%s", buildErr, buildOut)
		}
	}
	return getBinaryPath(t)
}

// result is the outcome of one CLI invocation.
type result struct {
	stdout []byte
	stderr string
	code   int
}

func runCLI(t *testing.T, stdin []byte, args ...string) result {
	t.Helper()
	return runCLIEnv(t, nil, stdin, args...)
}

// englishEnv pins the child's locale. Later entries win over the inherited
// environment.
var englishEnv = []string{"LANGUAGE=", "LC_ALL=en_US.UTF-8", "LC_MESSAGES=", "LANG=en_US.UTF-8", "FRAMEPUMP_LANG="}

func runCLIEnv(t *testing.T, env []string, stdin []byte, args ...string) result {
	t.Helper()
	bin := requireBinary(t)

	cmd := exec.Command(bin, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(append(os.Environ(), englishEnv...), env...)
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("Failed to run CLI: %v", err)
		}
		code = exitErr.ExitCode()
	}

	return result{stdout: stdout.Bytes(), stderr: stderr.String(), code: code}
}

func frames(width, height, n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.Write(i420.Gradient(width, height, i))
	}
	return buf.Bytes()
}

func TestNullEngine(t *testing.T) {
	// Three whole 2x2 frames plus a partial one
	input := append(frames(2, 2, 3), 0x10, 0x10)

	res := runCLI(t, input, "-w", "2", "-h", "2", "-f", "30", "--engine", "null", "--log-level", "debug")

	if res.code != 0 {
		t.Fatalf("expected exit code 0, got %d\nStderr: %s", res.code, res.stderr)
	}
	if len(res.stdout) != 0 {
		t.Errorf("expected no output from the null engine, got %d bytes", len(res.stdout))
	}
	for _, want := range []string{
		"vl_video_encoder_init: width=2, height=2, frame_rate=30, bit_rate=5000000, gop=10",
		"handle = ",
		"frameCount=0 (1 processed)",
		"read underflow (2 of 6)",
	} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("expected stderr to contain %q\nStderr: %s", want, res.stderr)
		}
	}
}

func TestJapaneseLocale(t *testing.T) {
	res := runCLIEnv(t, []string{"LC_ALL=ja_JP.UTF-8"}, frames(2, 2, 1), "-w", "2", "-h", "2", "-f", "30", "--engine", "null")

	if res.code != 0 {
		t.Fatalf("expected exit code 0, got %d\nStderr: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "null エンジンを使用します") {
		t.Errorf("expected Japanese diagnostics\nStderr: %s", res.stderr)
	}
}

func TestLangFlag(t *testing.T) {
	res := runCLIEnv(t, []string{"LC_ALL=ja_JP.UTF-8"}, frames(2, 2, 1), "-w", "2", "-h", "2", "-f", "30", "--engine", "null", "--lang", "en")

	if res.code != 0 {
		t.Fatalf("expected exit code 0, got %d\nStderr: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "Using null engine") {
		t.Errorf("expected English diagnostics\nStderr: %s", res.stderr)
	}
}

func TestQuiet(t *testing.T) {
	res := runCLI(t, frames(2, 2, 2), "-w", "2", "-h", "2", "-f", "30", "--engine", "null", "-q")

	if res.code != 0 {
		t.Fatalf("expected exit code 0, got %d", res.code)
	}
	if res.stderr != "" {
		t.Errorf("expected no diagnostics, got %q", res.stderr)
	}
}

func TestMissingRequired(t *testing.T) {
	res := runCLI(t, frames(2, 2, 1), "--width", "2", "--height", "2", "--engine", "null")

	if res.code != 2 {
		t.Errorf("expected exit code 2, got %d\nStderr: %s", res.code, res.stderr)
	}
	if len(res.stdout) != 0 {
		t.Errorf("expected no output, got %d bytes", len(res.stdout))
	}
	if strings.Contains(res.stderr, "handle = ") {
		t.Error("encoder must not be initialized without required options")
	}
}

func TestUnknownFlag(t *testing.T) {
	res := runCLI(t, nil, "--frobnicate")

	if res.code != 2 {
		t.Errorf("expected exit code 2, got %d\nStderr: %s", res.code, res.stderr)
	}
}

func TestHelp(t *testing.T) {
	res := runCLI(t, nil, "--help")

	if res.code != 0 {
		t.Fatalf("expected exit code 0, got %d", res.code)
	}
	if !strings.Contains(string(res.stdout), "--height value, -h value") {
		t.Errorf("expected -h to be the height alias\nOutput: %s", res.stdout)
	}
}

func TestEngineUnavailable(t *testing.T) {
	res := runCLI(t, frames(2, 2, 1),
		"-w", "2", "-h", "2", "-f", "30",
		"--engine", "hicodec", "--library", filepath.Join(t.TempDir(), "libhicodec-missing.so"))

	if res.code != 255 {
		t.Errorf("expected exit code 255, got %d\nStderr: %s", res.code, res.stderr)
	}
	if len(res.stdout) != 0 {
		t.Errorf("expected no output, got %d bytes", len(res.stdout))
	}
}

func TestSummary(t *testing.T) {
	summaryPath := filepath.Join(t.TempDir(), "summary.yaml")

	res := runCLI(t, frames(4, 4, 5), "-w", "4", "-h", "4", "-f", "25", "--engine", "null", "--summary", summaryPath)
	if res.code != 0 {
		t.Fatalf("expected exit code 0, got %d\nStderr: %s", res.code, res.stderr)
	}

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("Failed to read summary: %v", err)
	}

	var summary struct {
		Outcome string `yaml:"outcome"`
		Engine  struct {
			Name string `yaml:"name"`
		} `yaml:"engine"`
		Stats struct {
			Frames  int `yaml:"frames"`
			BytesIn int `yaml:"bytes_in"`
		} `yaml:"stats"`
	}
	if err := yaml.Unmarshal(data, &summary); err != nil {
		t.Fatalf("Failed to parse summary: %v\n%s", err, data)
	}

	if summary.Outcome != "ok" {
		t.Errorf("expected outcome ok, got %q", summary.Outcome)
	}
	if summary.Engine.Name != "null" {
		t.Errorf("expected engine null, got %q", summary.Engine.Name)
	}
	if summary.Stats.Frames != 5 || summary.Stats.BytesIn != 5*24 {
		t.Errorf("expected 5 frames and %d bytes in, got %d and %d", 5*24, summary.Stats.Frames, summary.Stats.BytesIn)
	}
}

func TestFFmpegEngine(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil && os.Getenv("FFMPEG_PATH") == "" {
		t.Skip("ffmpeg not found")
	}

	res := runCLI(t, frames(320, 240, 30), "-w", "320", "-h", "240", "-f", "30", "--engine", "ffmpeg")

	if res.code != 0 {
		t.Fatalf("expected exit code 0, got %d\nStderr: %s", res.code, res.stderr)
	}
	if len(res.stdout) < 4 {
		t.Fatalf("expected an H.264 stream, got %d bytes", len(res.stdout))
	}
	if !bytes.HasPrefix(res.stdout, []byte{0, 0, 0, 1}) && !bytes.HasPrefix(res.stdout, []byte{0, 0, 1}) {
		t.Errorf("expected Annex B start code, got % x", res.stdout[:4])
	}
}

func getProjectRoot(t *testing.T) string {
	// Start from current working directory and find go.mod
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}
