package domain

import "context"

// SlotPool é o limite de requisições em andamento no servidor.
//
// Acquire espera por uma vaga até o ctx encerrar; ok=false significa que
// nada foi reservado. O release devolvido libera a vaga e deve ser chamado
// uma única vez.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), ok bool)
}
