// Package domain define os tipos e contratos do cadastro de candidatos.
//
// Este pacote não depende de net/http nem de implementações concretas de
// armazenamento. Assim as regras (validação, formato de data, taxonomia de
// erros) podem ser testadas isoladamente.
package domain
