package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vtcore-go/vtcore"
	"github.com/vtcore-go/vtcore/internal/config"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var record bool

	cmd := &cobra.Command{
		Use:   "run [-- <command> [args...]]",
		Short: "Run a shell (or the given command) under vtcore",
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := os.Getenv("SHELL")
			if shell == "" {
				shell = "/bin/sh"
			}
			command := shell
			cmdArgs := []string{}
			if len(args) > 0 {
				command = args[0]
				cmdArgs = args[1:]
			}
			return runSession(configPath, command, cmdArgs, record)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a vtdemo YAML config file")
	cmd.Flags().BoolVar(&record, "record", false, "Record raw PTY output for later replay with 'vtdemo dump'")

	return cmd
}

func runSession(configPath, command string, cmdArgs []string, record bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sessionID := uuid.New().String()
	logger := newLogger(cfg, sessionID)

	lock, err := acquireSessionLock(cfg, sessionID)
	if err != nil {
		return fmt.Errorf("acquire session lock: %w", err)
	}
	defer lock.Unlock()

	rows, cols := cfg.Rows, cfg.Cols
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
			cols, rows = w, h
		}
	}

	opts := []vtcore.Option{
		vtcore.WithSize(rows, cols),
		vtcore.WithResponse(os.Stdout),
		vtcore.WithTracer(zerologTracer{log: logger}),
		vtcore.WithAutoResize(),
	}

	var recorder *sessionRecorder
	if record {
		recorder = &sessionRecorder{}
		opts = append(opts, vtcore.WithRecording(recorder))
	}

	vt := vtcore.New(opts...)

	cmdHandle := buildCommand(command, cmdArgs)
	ptmx, err := pty.StartWithSize(cmdHandle, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("start command: %w", err)
	}
	defer ptmx.Close()

	var restore *term.State
	stdinFd := int(os.Stdin.Fd())
	if isatty.IsTerminal(os.Stdin.Fd()) {
		restore, err = term.MakeRaw(stdinFd)
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
	}
	defer func() {
		if restore != nil {
			term.Restore(stdinFd, restore)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// The signal goroutine never touches vt: it resizes the PTY and hands
	// the latest size to the read loop, which applies it before its next
	// vt.Write.
	resizeCh := make(chan [2]int, 1)
	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGWINCH:
				if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
					pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
					select {
					case <-resizeCh:
					default:
					}
					resizeCh <- [2]int{h, w}
				}
			case syscall.SIGINT, syscall.SIGTERM:
				cmdHandle.Process.Signal(sig)
			}
		}
	}()

	go io.Copy(ptmx, os.Stdin)

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		select {
		case size := <-resizeCh:
			vt.Resize(size[0], size[1])
		default:
		}
		if n > 0 {
			chunk := buf[:n]
			if recorder != nil {
				recorder.Record(chunk)
			}
			vt.Write(chunk)
			os.Stdout.Write(chunk)
		}
		if err != nil {
			break
		}
	}

	if recorder != nil {
		recPath := filepath.Join(cfg.RecordingDir, sessionID+".rec")
		if err := os.WriteFile(recPath, recorder.Data(), 0o644); err != nil {
			logger.Warn().Err(err).Msg("failed to save recording")
		} else {
			fmt.Fprintf(os.Stderr, "recording saved to %s\n", recPath)
		}
	}

	logger.Info().Str("session", sessionID).Msg("session ended")
	return cmdHandle.Wait()
}

func newLogger(cfg *config.Config, sessionID string) zerolog.Logger {
	var out io.Writer = io.Discard
	if cfg.LogPath != "" {
		if f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}
	return zerolog.New(out).With().Timestamp().Str("session", sessionID).Logger()
}

func acquireSessionLock(cfg *config.Config, sessionID string) (*flock.Flock, error) {
	if err := os.MkdirAll(cfg.RecordingDir, 0o755); err != nil {
		return nil, err
	}
	lockPath := filepath.Join(cfg.RecordingDir, sessionID+".lock")
	lock := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, fmt.Errorf("session %s is already locked", sessionID)
	}
	return lock, nil
}

func buildCommand(command string, args []string) *exec.Cmd {
	c := exec.Command(command, args...)
	c.Env = os.Environ()
	return c
}
