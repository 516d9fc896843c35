package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"savoria/db"
	"savoria/models"
	"savoria/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Plain stock bookkeeping for the back-office. Nothing here reserves or
// allocates inventory against bookings.

func ListItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.InventoryCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cur.Close(ctx)

	items := []models.InventoryItem{}
	if err := cur.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "items": items})
}

func CreateItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if item.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	item.ItemID = "inv-" + utils.GenerateRandomString(12)
	item.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.InventoryCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "item": item})
}

func UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var item models.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"name":      item.Name,
		"category":  item.Category,
		"quantity":  item.Quantity,
		"unit":      item.Unit,
		"notes":     item.Notes,
		"updatedAt": time.Now(),
	}
	res, err := db.InventoryCollection.UpdateOne(ctx,
		bson.M{"itemId": ps.ByName("id")},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Item updated"})
}

func DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.InventoryCollection.DeleteOne(ctx, bson.M{"itemId": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
