package generator

import (
	"fmt"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

// ApiClient emits the typed HTTP client. Reads go through GetAsync and
// writes through PostAsync, both addressed by the route constants.
func ApiClient(cfg domain.EntityConfig) domain.GeneratedFile {
	n := newNames(cfg)

	var methods []string
	for _, e := range cfg.EndpointSet().Ordered() {
		methods = append(methods, clientMethod(n, e))
	}

	var b strings.Builder
	b.WriteString(usings(
		n.namespace("Shared", "Models"),
		n.namespace("Shared", "Requests"),
		"Framework.Common",
	))
	fmt.Fprintf(&b, "\nnamespace %s;\n\n", n.project("ApiClient"))
	fmt.Fprintf(&b, "public class %sApiClient : Base%sApiClient\n{\n", n.entity, n.module)
	fmt.Fprintf(&b, "    public %sApiClient(IHttpClientFactory httpClientFactory, IServiceProvider serviceProvider, IOpenIdConnectTokenProvider tokenProvider)\n", n.entity)
	b.WriteString("        : base(httpClientFactory, serviceProvider, tokenProvider)\n")
	b.WriteString("    {\n    }\n")
	for _, m := range methods {
		b.WriteString("\n")
		b.WriteString(m)
	}
	b.WriteString("}\n")

	return newFile(
		n.project("ApiClient"),
		n.entity+"ApiClient.cs",
		b.String(),
		domain.CategoryApiClient,
	)
}

func clientMethod(n names, e domain.EndpointType) string {
	route := n.constClass() + "." + n.operation(e)

	var payload, params, args string
	switch e {
	case domain.EndpointGetByID:
		payload = n.modelClass()
	case domain.EndpointGetList:
		payload = "PagedResult<" + n.modelClass() + ">"
	case domain.EndpointGetAll:
		payload = "List<" + n.modelClass() + ">"
	}
	if e.HasRequestShape() {
		params = n.requestClass(e) + " req"
		args = ", req"
	}

	result := "BusinessResult"
	verb := "PostAsync"
	if payload != "" {
		result += "<" + payload + ">"
	}
	if e.IsRead() {
		verb = "GetAsync<" + payload + ">"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "    public async Task<%s> %sAsync(%s)\n    {\n", result, n.operation(e), params)
	fmt.Fprintf(&b, "        return await %s(%s%s);\n", verb, route, args)
	b.WriteString("    }\n")
	return b.String()
}
