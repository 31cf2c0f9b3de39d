package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-microblog/internal/adapter"
	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: microblog [-a address] [-token token] [-request-timeout 15s] <command> [args]

commands:
  register <email> <password>
  login <email> <password>     prints a token for -token / ADAPTER_TOKEN
  posts
  post <content...>
  delete <post id>
  version                      server version
  build                        client build info`

var errUsage = errors.New(usage)

func main() {
	log := logger.NewLogger("go-microblog-client")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Send()
	}

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err = run(context.Background(), serverAdapter, args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, params := args[0], args[1:]
	switch command {
	case "register":
		if len(params) != 2 {
			return errUsage
		}
		user, err := api.Register(ctx, models.User{Email: params[0], Password: params[1]})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "registered user %d <%s>\n", user.ID, user.Email)

	case "login":
		if len(params) != 2 {
			return errUsage
		}
		token, err := api.Login(ctx, models.User{Email: params[0], Password: params[1]})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, token)

	case "posts":
		posts, err := api.GetPosts(ctx)
		if err != nil {
			return err
		}
		for _, post := range posts {
			author := "<unknown>"
			if post.UserEmail != nil {
				author = *post.UserEmail
			}
			fmt.Fprintf(out, "#%d %s %s: %s\n", post.ID, post.Timestamp.Format("2006-01-02 15:04:05"), author, post.Content)
		}

	case "post":
		if len(params) == 0 {
			return errUsage
		}
		post, err := api.CreatePost(ctx, strings.Join(params, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "created post #%d\n", post.ID)

	case "delete":
		if len(params) != 1 {
			return errUsage
		}
		postID, err := strconv.ParseInt(params[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q: %w", params[0], err)
		}
		if err = api.DeletePost(ctx, postID); err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted post #%d\n", postID)

	case "version":
		version, err := api.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, version)

	case "build":
		fmt.Fprintln(out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	default:
		return fmt.Errorf("unknown command %q\n%w", command, errUsage)
	}

	return nil
}
