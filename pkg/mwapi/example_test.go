package mwapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/lwmacct/261014-go-wikiexpand/pkg/mwapi"
)

// Example_expandTemplates 演示对 mock api.php 展开模板。
func Example_expandTemplates() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"expandtemplates":{"wikitext":%q}}`, "42:a")
	}))
	defer srv.Close()

	client, err := mwapi.New("sv", mwapi.WithEndpoint(srv.URL))
	if err != nil {
		fmt.Println(err)
		return
	}

	text, err := client.ExpandTemplates(context.Background(), "{{ordningstal|42}}")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(text)

	// Output:
	// 42:a
}

// Example_endpoint 演示由语言代码推导 api.php 地址。
func Example_endpoint() {
	fmt.Println(mwapi.Endpoint("sv"))
	fmt.Println(mwapi.ExpandParams("{{x}}").Encode())

	// Output:
	// https://sv.wikipedia.org/w/api.php
	// action=expandtemplates&format=json&prop=wikitext&text=%7B%7Bx%7D%7D
}

// Example_extractWikitext 演示错误分类。
func Example_extractWikitext() {
	_, err := mwapi.ExtractWikitext([]byte(`{"batchcomplete":""}`))
	fmt.Println(errors.Is(err, mwapi.ErrUnexpectedResponseShape))

	// Output:
	// true
}
