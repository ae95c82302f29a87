package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abreai/abreai-api/models"
)

func newChatFixture(t *testing.T) (*ChatService, *CartService, *FavoritesService, *OrderService) {
	t.Helper()
	cart := NewCartService(newMemStore())
	favorites := NewFavoritesService(newMemStore())
	orders := NewOrderService(newMemStore())
	return NewChatService(cart, favorites, orders), cart, favorites, orders
}

func TestChatFallbackOnNonsense(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	reply := chat.Respond("xyzzy plugh", "")
	assert.Contains(t, reply.Text, "Não entendi")
	assert.NotEmpty(t, reply.Suggestions)

	reply = chat.Respond("   ", "")
	assert.Contains(t, reply.Text, "Não entendi")
}

func TestChatCartSummaryReflectsLiveCart(t *testing.T) {
	chat, cart, _, _ := newChatFixture(t)

	reply := chat.Respond("mostra meu carrinho", "")
	assert.Contains(t, reply.Text, "vazio")

	_, _, err := cart.AddItem(testProducts[1], 2)
	require.NoError(t, err)

	reply = chat.Respond("mostra meu carrinho", "")
	assert.Contains(t, reply.Text, "Kit Boteco Clássico")
	assert.Contains(t, reply.Text, "R$ 259,80")
}

func TestChatFirstMatchWins(t *testing.T) {
	chat, cart, _, _ := newChatFixture(t)
	_, _, err := cart.AddItem(testProducts[1], 1)
	require.NoError(t, err)

	// "carrinho" outranks "pedido" in the rule order
	reply := chat.Respond("quero ver o carrinho do meu pedido", "")
	assert.Contains(t, reply.Text, "Seu Carrinho")
}

func TestChatOrdersRequireIdentifiedUser(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	reply := chat.Respond("meus pedidos", "")
	assert.Contains(t, reply.Text, "logado")
}

func TestChatListsCustomerOrders(t *testing.T) {
	chat, _, _, orders := newChatFixture(t)
	order, err := orders.Create(testSnapshot(), testCustomer(), OrderCharges{Shipping: 15})
	require.NoError(t, err)

	reply := chat.Respond("meus pedidos", "maria@example.com")
	assert.Contains(t, reply.Text, order.ID)
	assert.Contains(t, reply.Text, order.TrackingCode)

	reply = chat.Respond("meus pedidos", "outra@example.com")
	assert.Contains(t, reply.Text, "não tem pedidos")
}

func TestChatTrackingCodeLookup(t *testing.T) {
	chat, _, _, orders := newChatFixture(t)
	order, err := orders.Create(testSnapshot(), testCustomer(), OrderCharges{})
	require.NoError(t, err)

	reply := chat.Respond(order.TrackingCode, "")
	assert.Contains(t, reply.Text, "Pedido Encontrado")
	assert.Contains(t, reply.Text, order.TrackingCode)

	reply = chat.Respond("AB00000000", "")
	assert.Contains(t, reply.Text, "Não encontrei")
}

func TestChatTrackingPrompt(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	reply := chat.Respond("como faço para rastrear?", "")
	assert.Contains(t, reply.Text, "código")
}

func TestChatFavorites(t *testing.T) {
	chat, _, favorites, _ := newChatFixture(t)

	reply := chat.Respond("meus favoritos", "")
	assert.Contains(t, reply.Text, "não tem favoritos")

	favorites.Toggle(favoriteOf(testProducts[3]))
	reply = chat.Respond("meus favoritos", "")
	assert.Contains(t, reply.Text, "Cesta Romântica")
}

func TestChatCategoryListing(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	reply := chat.Respond("quero algo de churrasco", "")
	assert.NotEmpty(t, reply.Products)
	for _, p := range reply.Products {
		assert.Equal(t, models.CategoryChurrasco, p.Category)
	}
}

func TestChatRecommendationsSkipCartCategories(t *testing.T) {
	chat, cart, _, _ := newChatFixture(t)
	_, _, err := cart.AddItem(testProducts[1], 1) // rolee
	require.NoError(t, err)

	reply := chat.Respond("pode recomendar algo?", "")
	require.NotEmpty(t, reply.Products)
	for _, p := range reply.Products {
		assert.NotEqual(t, models.CategoryRolee, p.Category)
	}
}

func TestChatInfoReplies(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	assert.Contains(t, chat.Respond("qual o prazo de entrega?", "").Text, "Entrega")
	assert.Contains(t, chat.Respond("posso pagar com pix?", "").Text, "PIX")
	assert.Contains(t, chat.Respond("tem cupom de desconto?", "").Text, "ABREAI10")
}

func TestChatGreeting(t *testing.T) {
	chat, _, _, _ := newChatFixture(t)

	greeting := chat.Greeting()
	assert.Contains(t, greeting.Text, "ABRE AÍ!")
	assert.NotEmpty(t, greeting.Suggestions)
}
