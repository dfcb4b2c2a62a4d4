// Package intake fornece os adapters HTTP (net/http) do cadastro de candidatos.
//
// Visão geral (camadas):
//
//   - domain: tipos e contratos (sem dependência de net/http)
//   - application: casos de uso (registrar, listar, estatísticas, admissão) sem net/http
//   - infra: implementações concretas (store em memória, semáforo, stats memória/Redis)
//   - intake (este pacote): handlers + middlewares + arquivos estáticos + tradução para status
//
// Rotas:
//
//	POST /api/register   cadastra (201) ou 400 {"error": ...}
//	GET  /api/applicants lista tudo, em ordem de inserção
//	GET  /api/stats      contadores de cadastros
//	GET  /health         liveness
//	GET  /               página de entrada (index.html)
//	GET  /{path}         arquivo sob o diretório estático, 404 se não existir
package intake
