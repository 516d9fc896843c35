package addons

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
	"go.mongodb.org/mongo-driver/mongo"
)

const addonPicDir = "./static/addonpic"

// ListAddons serves the add-on catalog the proposal page renders live.
func ListAddons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.AddonsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cur.Close(ctx)

	items := []models.AddOnItem{}
	if err := cur.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "addons": items})
}

func CreateAddon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.AddOnItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if item.Name == "" || item.Price.Int() <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and price are required")
		return
	}

	item.AddonID = "add-" + utils.GenerateRandomString(12)
	item.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.AddonsCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "addon": item})
}

func UpdateAddon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var item models.AddOnItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"name":        item.Name,
		"price":       item.Price,
		"category":    item.Category,
		"description": item.Description,
	}
	res, err := db.AddonsCollection.UpdateOne(ctx,
		bson.M{"addonId": ps.ByName("id")},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Add-on not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Add-on updated"})
}

func DeleteAddon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.AddonsCollection.DeleteOne(ctx, bson.M{"addonId": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Add-on not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadAddonImage handles the multipart image upload for an add-on and
// stores the generated filename on the record.
func UploadAddonImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	addonID := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file missing")
		return
	}
	defer file.Close()

	if !utils.SupportedImageTypes[header.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	fileName, err := utils.SaveImageWithThumb(file, addonPicDir, utils.GetUUID())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err = db.AddonsCollection.FindOneAndUpdate(ctx,
		bson.M{"addonId": addonID},
		bson.M{"$set": bson.M{"image": "/static/addonpic/" + fileName}},
	).Err()
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Add-on not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"image":   "/static/addonpic/" + fileName,
	})
}
