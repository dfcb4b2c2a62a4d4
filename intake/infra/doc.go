// Package infra contém implementações concretas (infraestrutura) para os contratos
// definidos no pacote domain.
//
// Exemplos:
//   - MemoryStore: cadastros em memória, com contador de IDs sob mutex
//   - ChanPool: semáforo simples para limite de requisições em andamento
//   - MemoryStatsStore / RedisStatsStore: estatísticas de cadastros
package infra
