/*
 * engine.go, part of goDock.
 *
 * Copyright 2026 The goDock authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

//Command is one invocation of an external program. Output is the file the
//program is expected to produce, or the empty string if none.
type Command struct {
	Program string
	Args    []string
	Output  string
}

func (C Command) String() string {
	return strings.Join(append([]string{C.Program}, C.Args...), " ")
}

//Result is the outcome of running a Command.
type Result struct {
	Program       string
	Args          []string
	Succeeded     bool //the program ran and exited with status 0
	ExitCode      int  //-1 if the program could not be started or was killed
	Stdout        string
	Stderr        string
	Output        string
	OutputPresent bool
	Duration      time.Duration
	Err           error //error starting or waiting for the program, if any
}

//Check returns nil if the program succeeded and produced its output.
//Otherwise it returns an Error describing the first problem.
func (R Result) Check() error {
	input := ""
	if len(R.Args) > 0 {
		input = R.Args[0]
	}
	if !R.Succeeded {
		detail := strings.TrimSpace(R.Stderr)
		if detail == "" && R.Err != nil {
			detail = R.Err.Error()
		}
		return Error{Message: ErrNotRunning, Program: R.Program, Input: input, Detail: detail, deco: []string{"Result.Check"}, critical: true}
	}
	if R.Output != "" && !R.OutputPresent {
		return Error{Message: ErrNoOutput, Program: R.Program, Input: input, Detail: R.Output, deco: []string{"Result.Check"}, critical: true}
	}
	return nil
}

//waitDelay is how long a killed program's children can keep its output open.
const waitDelay = 2 * time.Second

//Runner runs external commands.
type Runner interface {
	Run(ctx context.Context, c Command) Result
}

//ExecRunner runs commands as subprocesses and waits for them.
//A zero Timeout means no time limit.
type ExecRunner struct {
	Timeout time.Duration
	Env     []string //extra environment variables, "KEY=value"
}

//Run implements Runner. It never returns before the subprocess has exited.
func (E ExecRunner) Run(ctx context.Context, c Command) Result {
	res := Result{Program: c.Program, Args: c.Args, Output: c.Output, ExitCode: -1}
	if E.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, E.Timeout)
		defer cancel()
	}
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, c.Program, c.Args...)
	command.Stdout = &stdout
	command.Stderr = &stderr
	command.WaitDelay = waitDelay
	if len(E.Env) > 0 {
		command.Env = append(os.Environ(), E.Env...)
	}
	ini := time.Now()
	err := command.Run()
	res.Duration = time.Since(ini)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.Succeeded = true
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		res.Err = err
	default:
		res.Err = err
	}
	if ctx.Err() != nil && res.Err != nil {
		res.Err = ctx.Err()
	}
	if c.Output != "" {
		fi, err := os.Stat(c.Output)
		res.OutputPresent = err == nil && !fi.IsDir()
	}
	return res
}

//Available returns true if program can be found in the PATH, or is an executable path.
func Available(program string) bool {
	_, err := exec.LookPath(program)
	return err == nil
}
