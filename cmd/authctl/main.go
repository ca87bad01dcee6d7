// Command authctl is a small interactive client for the authentication
// server: it can register an account, log in, and check server status.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avetisov/authsvc/internal/client"
	"github.com/avetisov/authsvc/internal/client/cli"
	"github.com/avetisov/authsvc/internal/common"
)

func main() {
	addr := flag.String("a", "http://localhost:8080", "server base URL")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	api := client.New(*addr)

	var err error
	switch flag.Arg(0) {
	case "register":
		err = runRegister(ctx, api)
	case "login":
		err = runLogin(ctx, api)
	case "status":
		err = runStatus(ctx, api)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: authctl [-a url] register|login|status")
}

func readCredentials() (string, []byte, error) {
	reader := bufio.NewReader(os.Stdin)

	email, err := cli.GetSimpleText(reader, "Enter email", os.Stdout)
	if err != nil {
		return "", nil, err
	}

	password, err := cli.GetPassword(os.Stdout)
	if err != nil {
		return "", nil, err
	}

	return email, password, nil
}

func runRegister(ctx context.Context, api *client.APIClient) error {
	email, password, err := readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	publicID, err := api.Register(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Registered. User id: %s\n", publicID)
	return nil
}

func runLogin(ctx context.Context, api *client.APIClient) error {
	email, password, err := readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Logged in. Token: %s\n", token)
	return nil
}

func runStatus(ctx context.Context, api *client.APIClient) error {
	msg, err := api.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Println(msg)
	return nil
}
