// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-movies-api/internal/adapter"
	"github.com/MKhiriev/go-movies-api/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errWrongArgs      = errors.New("wrong number of arguments")
)

const usage = `usage: go-movies-client [-a address] [-timeout d] [-token t] <command> [args]

commands:
  welcome
  register <userName> <password> <email> [birthDate]
  login <userName> <password>
  profile <userName>
  update <userName> [-username u] [-password p] [-email e] [-birth-date yyyy-mm-dd]
  delete <userName>
  fav-add <userName> <movieID>
  fav-rm <userName> <movieID>
  movies
  movie <title>
  genre <name>
  director <name>
`

type command struct {
	args int
	run  func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error
}

var commands = map[string]command{
	"welcome": {args: 0, run: func(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
		msg, err := a.Welcome(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, msg)
		return err
	}},
	"register": {args: -1, run: register},
	"login": {args: 2, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		resp, err := a.Login(ctx, models.Credentials{UserName: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		return printJSON(out, resp)
	}},
	"profile": {args: 1, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		return printResult[models.User](out)(a.GetUser(ctx, args[0]))
	}},
	"update": {args: -1, run: update},
	"delete": {args: 1, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		msg, err := a.DeleteUser(ctx, args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, msg)
		return err
	}},
	"fav-add": {args: 2, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		return printResult[models.User](out)(a.AddFavoriteMovie(ctx, args[0], args[1]))
	}},
	"fav-rm": {args: 2, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		return printResult[models.User](out)(a.RemoveFavoriteMovie(ctx, args[0], args[1]))
	}},
	"movies": {args: 0, run: func(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
		movies, err := a.ListMovies(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, movies)
	}},
	"movie": {args: 1, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		return printResult[models.Movie](out)(a.GetMovie(ctx, args[0]))
	}},
	"genre": {args: 1, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		return printResult[models.Genre](out)(a.GetGenre(ctx, args[0]))
	}},
	"director": {args: 1, run: func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		return printResult[models.Director](out)(a.GetDirector(ctx, args[0]))
	}},
}

// run dispatches args[0] to its command. Validation failures reported by the
// server are printed one field per line.
func run(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errNoCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(out, usage)
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
	if cmd.args >= 0 && len(args)-1 != cmd.args {
		return fmt.Errorf("%w: %s expects %d", errWrongArgs, args[0], cmd.args)
	}

	err := cmd.run(ctx, a, args[1:], out)

	var verr *adapter.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			fmt.Fprintf(out, "%s: %s\n", fe.Param, fe.Msg)
		}
	}
	return err
}

func register(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: register expects 3 or 4", errWrongArgs)
	}

	req := models.RegisterRequest{UserName: args[0], Password: args[1], Email: args[2]}
	if len(args) == 4 {
		req.BirthDate = args[3]
	}

	return printResult[models.User](out)(a.Register(ctx, req))
}

func update(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: update expects a user name", errWrongArgs)
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(out)
	userName := fs.String("username", "", "new user name")
	password := fs.String("password", "", "new password")
	email := fs.String("email", "", "new email")
	birthDate := fs.String("birth-date", "", "new birth date (yyyy-mm-dd)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var req models.UpdateUserRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "username":
			req.UserName = userName
		case "password":
			req.Password = password
		case "email":
			req.Email = email
		case "birth-date":
			req.BirthDate = birthDate
		}
	})

	return printResult[models.User](out)(a.UpdateUser(ctx, args[0], req))
}

// printResult adapts a (value, error) pair into a JSON print.
func printResult[T any](out io.Writer) func(T, error) error {
	return func(v T, err error) error {
		if err != nil {
			return err
		}
		return printJSON(out, v)
	}
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(out, strings.TrimSpace(string(data)))
	return err
}
